package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_FieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn", "err", errors.New("boom"))
	log.Error(ctx, "err", "odd")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, float64(1), lines[0]["a"])
	assert.Equal(t, "two", lines[1]["b"])
	assert.Equal(t, "boom", lines[2]["err"])
	assert.Equal(t, "odd", lines[3]["!BADKEY"])
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf)).With("draft", "d-1")
	log.Info(context.Background(), "submitted", "gig_id", "g-1")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "d-1", lines[0]["draft"])
	assert.Equal(t, "g-1", lines[0]["gig_id"])
	assert.Equal(t, "submitted", lines[0]["message"])
}

func TestNew_Formats(t *testing.T) {
	ctx := context.Background()

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New("text", "debug", &buf)
		require.NoError(t, err)
		log.Debug(ctx, "hello", "k", "v")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "k=v")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New("json", "info", &buf)
		require.NoError(t, err)
		log.Debug(ctx, "hidden")
		log.Info(ctx, "shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
	})

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New("console", "", &buf)
		require.NoError(t, err)
		log.Info(ctx, "console line", "k", "v")
		assert.Contains(t, buf.String(), "console line")
		assert.Contains(t, buf.String(), "k=v")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := New("xml", "info", &bytes.Buffer{})
		require.Error(t, err)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := New("text", "loud", &bytes.Buffer{})
		require.Error(t, err)
	})
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.Info(context.Background(), "x")
	l.With("a", 1).Error(context.Background(), "y")
}
