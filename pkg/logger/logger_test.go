package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestInfoCarriesContextFields(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "schema-core", Output: &buf})

	ctx := logg.WithFields(context.Background(), map[string]any{"table": "sales"})
	logg.Info(ctx, "migration applied")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not json: %v", err)
	}
	if entry["service"] != "schema-core" {
		t.Fatalf("expected service field, got %v", entry["service"])
	}
	if entry["table"] != "sales" {
		t.Fatalf("expected table field to flow through context, got %v", entry["table"])
	}
	if entry["message"] != "migration applied" {
		t.Fatalf("unexpected message %v", entry["message"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "schema-core", Level: zerolog.WarnLevel, Output: &buf})

	logg.Info(context.Background(), "ignored")
	if buf.Len() != 0 {
		t.Fatalf("expected info below warn level to be dropped, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("DEBUG"); got != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", got)
	}
	if got := ParseLevel(""); got != zerolog.InfoLevel {
		t.Fatalf("expected default info level, got %v", got)
	}
	if got := ParseLevel("nonsense"); got != zerolog.InfoLevel {
		t.Fatalf("expected fallback info level, got %v", got)
	}
}
