package rating

import "strconv"

// RecordAverage averages the skills of one rating. ok is false when every skill is zero.
func RecordAverage(r Rating) (float64, bool) {
	skills := r.Skills()
	sum := 0.0
	rated := false
	for _, v := range skills {
		if v != 0 {
			rated = true
		}
		sum += v
	}
	if !rated {
		return 0, false
	}
	return sum / float64(len(skills)), true
}

// AverageValue is the mean of per-record averages over rated records.
func AverageValue(ratings []Rating) (float64, bool) {
	total := 0.0
	count := 0
	for _, r := range ratings {
		avg, ok := RecordAverage(r)
		if !ok {
			continue
		}
		total += avg
		count++
	}
	if count == 0 {
		return 0, false
	}
	return total / float64(count), true
}

// Average renders AverageValue with one decimal, or "0" when nothing was rated.
func Average(ratings []Rating) string {
	avg, ok := AverageValue(ratings)
	if !ok {
		return "0"
	}
	return strconv.FormatFloat(avg, 'f', 1, 64)
}
