package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)
	log.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Fatalf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, `"key":"value"`) {
		t.Fatalf("expected key/value in JSON output, got: %s", out)
	}
}

func TestJSONLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelWarn)
	log.Info("suppressed")
	log.Debug("also suppressed")
	if buf.Len() > 0 {
		t.Fatalf("expected no output below warn, got: %s", buf.String())
	}

	log.Warn("emitted")
	if !strings.Contains(buf.String(), "emitted") {
		t.Fatalf("expected warn message, got: %s", buf.String())
	}
}

func TestWithAttachesAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo).With("component", "codec")
	log.Info("child message")

	out := buf.String()
	if !strings.Contains(out, `"component":"codec"`) {
		t.Fatalf("expected component attr, got: %s", out)
	}
}

func TestPrettyOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelInfo)
	log.Info("opened file", "path", "img.png", "note", "two words")

	out := buf.String()
	if !strings.Contains(out, "opened file") {
		t.Fatalf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, "path=img.png") {
		t.Fatalf("expected unquoted attr, got: %s", out)
	}
	if !strings.Contains(out, `note="two words"`) {
		t.Fatalf("expected quoted attr with spaces, got: %s", out)
	}
}

func TestPrettyHandlerEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("error should be enabled at warn level")
	}
}

func TestPrettyHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)
	log := slog.New(h.WithAttrs([]slog.Attr{slog.String("service", "pngme")}))
	log.Info("ready")

	if !strings.Contains(buf.String(), "service=pngme") {
		t.Fatalf("expected handler attrs in output, got: %s", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)
	ctx := WithContext(context.Background(), log)
	FromContext(ctx).Info("via context")

	if !strings.Contains(buf.String(), "via context") {
		t.Fatalf("expected message via context logger, got: %s", buf.String())
	}
}

func TestFromContextFallsBack(t *testing.T) {
	t.Parallel()

	if FromContext(context.Background()) == nil {
		t.Fatalf("FromContext returned nil without a stored logger")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q): got %v want %v", tc.in, got, tc.want)
		}
	}
}
