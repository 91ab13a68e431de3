package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "restore started", "token_present", true)
	log.Info(ctx, "signed in", "user_id", "u1")
	log.Warn(ctx, "session purge failed", "attempt", 1)
	log.Error(ctx, "gig submission failed", "class", "rejected")

	out := buf.String()
	for _, want := range []string{
		`level=DEBUG msg="restore started" token_present=true`,
		`level=INFO msg="signed in" user_id=u1`,
		`level=WARN msg="session purge failed" attempt=1`,
		`level=ERROR msg="gig submission failed" class=rejected`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_LevelFilter(t *testing.T) {
	log, buf := newTestLogger(slog.LevelWarn)
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "hidden")
	log.Warn(ctx, "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(slog.LevelInfo)

	scoped := log.With("component", "reconciler", "draft_id", "d-1")
	scoped.Info(context.Background(), "gig submitted", "gig_id", "g-1")
	log.Info(context.Background(), "plain")

	out := buf.String()
	assert.Contains(t, out, `msg="gig submitted" component=reconciler draft_id=d-1 gig_id=g-1`)
	assert.Contains(t, out, "msg=plain\n")
}
