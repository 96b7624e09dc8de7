package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartUsecaseSpan_UntracedCallerGetsNoop(t *testing.T) {
	ctx := context.WithValue(context.Background(), "k", "v")

	got, span := startUsecaseSpan(ctx, "usecase.LineupService.Save", matchAttr(3))
	defer span.End()

	require.Equal(t, ctx, got)
	require.False(t, span.IsRecording())
	require.False(t, span.SpanContext().IsValid())
}

func TestClubAttributes(t *testing.T) {
	require.Equal(t, "club.team_id", string(teamAttr(1).Key))
	require.Equal(t, int64(4), matchAttr(4).Value.AsInt64())
}
