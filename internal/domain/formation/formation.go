package formation

import (
	_ "embed"
	"slices"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Known position codes. Every formation in the catalog draws from this set.
var Vocabulary = []string{
	"GK",
	"LB", "LCB", "CB", "RCB", "RB", "LWB", "RWB",
	"CDM", "LCM", "CM", "RCM", "CAM", "LM", "RM",
	"LW", "RW", "LS", "ST", "RS",
}

// Formation is a named, ordered list of field positions.
type Formation struct {
	Key       string   `yaml:"key"`
	Positions []string `yaml:"positions"`
}

type catalogFile struct {
	Default    string      `yaml:"default"`
	Formations []Formation `yaml:"formations"`
}

// Catalog is an immutable registry of formations.
type Catalog struct {
	defaultKey string
	order      []string
	byKey      map[string][]string
}

//go:embed formations.yaml
var catalogYAML []byte

var builtin = mustParse(catalogYAML)

// Default returns the catalog shipped with the service.
func Default() *Catalog {
	return builtin
}

func mustParse(raw []byte) *Catalog {
	c, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a catalog from its YAML description.
func Parse(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrap(err, "decode formation catalog")
	}
	if len(file.Formations) == 0 {
		return nil, errors.New("formation catalog is empty")
	}

	known := make(map[string]struct{}, len(Vocabulary))
	for _, code := range Vocabulary {
		known[code] = struct{}{}
	}

	c := &Catalog{
		defaultKey: file.Default,
		order:      make([]string, 0, len(file.Formations)),
		byKey:      make(map[string][]string, len(file.Formations)),
	}
	for _, f := range file.Formations {
		if f.Key == "" {
			return nil, errors.New("formation key is required")
		}
		if _, dup := c.byKey[f.Key]; dup {
			return nil, errors.Newf("duplicate formation %q", f.Key)
		}
		if len(f.Positions) == 0 {
			return nil, errors.Newf("formation %q has no positions", f.Key)
		}
		seen := make(map[string]struct{}, len(f.Positions))
		for _, pos := range f.Positions {
			if _, ok := known[pos]; !ok {
				return nil, errors.Newf("formation %q uses unknown position %q", f.Key, pos)
			}
			if _, dup := seen[pos]; dup {
				return nil, errors.Newf("formation %q repeats position %q", f.Key, pos)
			}
			seen[pos] = struct{}{}
		}
		c.order = append(c.order, f.Key)
		c.byKey[f.Key] = slices.Clone(f.Positions)
	}
	if _, ok := c.byKey[c.defaultKey]; !ok {
		return nil, errors.Newf("default formation %q is not in the catalog", c.defaultKey)
	}

	return c, nil
}

// DefaultKey is the formation used when a requested key is unknown.
func (c *Catalog) DefaultKey() string {
	return c.defaultKey
}

func (c *Catalog) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// Keys lists formation keys in catalog order.
func (c *Catalog) Keys() []string {
	return slices.Clone(c.order)
}

// Positions returns the ordered positions for key, falling back to the default formation.
func (c *Catalog) Positions(key string) []string {
	if positions, ok := c.byKey[key]; ok {
		return slices.Clone(positions)
	}
	return slices.Clone(c.byKey[c.defaultKey])
}

// Resolve returns the effective key for key, which is key itself when known.
func (c *Catalog) Resolve(key string) string {
	if c.Has(key) {
		return key
	}
	return c.defaultKey
}

// All returns every formation in catalog order.
func (c *Catalog) All() []Formation {
	out := make([]Formation, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, Formation{Key: key, Positions: slices.Clone(c.byKey[key])})
	}
	return out
}

// Infer finds the first formation whose positions contain every given field
// position. Unknown or empty sets resolve to the default formation.
func (c *Catalog) Infer(fieldPositions []string) string {
	if len(fieldPositions) == 0 {
		return c.defaultKey
	}

	for _, key := range c.order {
		positions := c.byKey[key]
		if len(fieldPositions) > len(positions) {
			continue
		}
		if containsAll(positions, fieldPositions) {
			return key
		}
	}

	return c.defaultKey
}

func containsAll(set, items []string) bool {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			return false
		}
		seen[item] = struct{}{}
		if !slices.Contains(set, item) {
			return false
		}
	}
	return true
}

// Positions is a shortcut for Default().Positions.
func Positions(key string) []string {
	return builtin.Positions(key)
}
