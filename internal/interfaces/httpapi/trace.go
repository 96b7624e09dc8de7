package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("cantera/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// clubIDParams maps query parameters to the span attributes used to find traces by entity.
var clubIDParams = []struct {
	param string
	attr  attribute.Key
}{
	{param: "id", attr: "club.entity_id"},
	{param: "temporadaId", attr: "club.season_id"},
	{param: "equipoId", attr: "club.team_id"},
	{param: "jugadorId", attr: "club.player_id"},
	{param: "partidoId", attr: "club.match_id"},
	{param: "sesionId", attr: "club.session_id"},
}

// startSpan only creates handler spans, and only below the otelhttp server span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !isHandlerSpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

// startHandlerSpan starts the span of a handler and tags it with the club ids in the query string.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx, span := startSpan(r.Context(), name)
	if span.IsRecording() {
		span.SetAttributes(clubSpanAttributes(r.URL.Query())...)
	}
	return ctx, span
}

func clubSpanAttributes(query url.Values) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	for _, p := range clubIDParams {
		raw := strings.TrimSpace(query.Get(p.param))
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		attrs = append(attrs, p.attr.Int64(id))
	}
	return attrs
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
