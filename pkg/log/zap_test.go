package log_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"looking-glass/pkg/log"
)

func TestInitWritesToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := log.Init(log.ZapConfig{
		Level:       "info",
		Mode:        log.ModeProduction,
		Encoding:    log.EncodingJSON,
		OutputPaths: []string{path},
	})

	ctx := log.WithFields(context.Background(), "op", "load")
	l.Debug(ctx, "hidden below info")
	l.Infof(ctx, "loaded %d entries", 3)

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(raw)
	if strings.Contains(out, "hidden below info") {
		t.Errorf("debug line should be filtered at info level: %s", out)
	}
	if !strings.Contains(out, "loaded 3 entries") {
		t.Errorf("missing info line: %s", out)
	}
	if !strings.Contains(out, `"op":"load"`) {
		t.Errorf("missing context field: %s", out)
	}
}

func TestWithFieldsAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeProduction, Encoding: log.EncodingJSON, OutputPaths: []string{path}})

	ctx := log.WithFields(context.Background(), "a", 1)
	ctx = log.WithFields(ctx, "b", 2)
	l.Warn(ctx, "both")

	raw, _ := os.ReadFile(path)
	out := string(raw)
	if !strings.Contains(out, `"a":1`) || !strings.Contains(out, `"b":2`) {
		t.Errorf("expected both fields, got %s", out)
	}
}

func TestNopDoesNotPanic(t *testing.T) {
	l := log.NewNop()
	l.Info(context.Background(), "nothing")
	l.Errorf(context.Background(), "nothing %d", 1)
}
