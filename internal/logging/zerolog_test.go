package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologLogger_Levels_WriteExpectedOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))
	ctx := context.Background()

	log.Info(ctx, "inf", "a", 1)
	log.Warn(ctx, "wrn", "b", 2)
	log.Error(ctx, "err", "c", 3)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		field string
	}{
		{"info", "inf", `"a":1`},
		{"warn", "wrn", `"b":2`},
		{"error", "err", `"c":3`},
	}

	for _, tc := range tests {
		if !strings.Contains(out, `"level":"`+tc.level+`"`) {
			t.Fatalf("expected level %q in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, `"message":"`+tc.msg+`"`) {
			t.Fatalf("expected message %q in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.field) {
			t.Fatalf("expected field %s in output:\n%s", tc.field, out)
		}
	}
}

func TestZerologLogger_With_AddsPermanentFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	child := log.With("module", "cli")
	child.Info(context.Background(), "hello")

	if !strings.Contains(buf.String(), `"module":"cli"`) {
		t.Fatalf("expected module field in output:\n%s", buf.String())
	}
}

func TestZerologLogger_SkipsMalformedPairs(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.Info(context.Background(), "odd", 42, "value", "tail")

	out := buf.String()
	if !strings.Contains(out, `"message":"odd"`) {
		t.Fatalf("expected message in output:\n%s", out)
	}
	if strings.Contains(out, "tail") {
		t.Fatalf("malformed pair should be skipped:\n%s", out)
	}
}
