package logging_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"s2replay/internal/config"
	"s2replay/internal/logging"
)

func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "pipeline").Info("resolved decoder", logging.FieldBuild, 88500, "note", "two words")

	line := buf.String()
	if !strings.Contains(line, " INFO pipeline: resolved decoder") {
		t.Fatalf("unexpected console line %q", line)
	}
	if !strings.Contains(line, "build=88500") || !strings.Contains(line, `note="two words"`) {
		t.Fatalf("expected key/value fields, got %q", line)
	}
	if strings.Contains(line, ".go:") {
		t.Fatalf("expected no caller information at info level, got %q", line)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("message with caller")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller in debug logs, got %q", buf.String())
	}
}

func TestDefaultLevelSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected warn default level, got %q", buf.String())
	}
}

func TestJSONLoggerKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hello", logging.FieldCategory, "game events")

	var entry map[string]any
	if err := jsoniter.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "hello" || entry["level"] != "info" || entry["category"] != "game events" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", entry)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithRunID(context.Background(), "run-1")
	logging.WithContext(ctx, logger).Info("tagged")
	if !strings.Contains(buf.String(), "run_id=run-1") {
		t.Fatalf("expected run id, got %q", buf.String())
	}
	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "info"
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "s2replay.log")

	var stderr bytes.Buffer
	logger, closeLog, err := logging.NewFromConfig(&cfg, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("to both")
	if err := closeLog(); err != nil {
		t.Fatalf("close log file: %v", err)
	}
	if err := closeLog(); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("expected log file to be closed already, got %v", err)
	}

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "to both") || !strings.Contains(stderr.String(), "to both") {
		t.Fatalf("expected line in file and stderr, file=%q stderr=%q", content, stderr.String())
	}
}

func TestNewFromConfigWithoutFile(t *testing.T) {
	cfg := config.Default()
	var stderr bytes.Buffer
	logger, closeLog, err := logging.NewFromConfig(&cfg, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Warn("stderr only")
	if err := closeLog(); err != nil {
		t.Fatalf("close without file: %v", err)
	}
	if !strings.Contains(stderr.String(), "stderr only") {
		t.Fatalf("expected stderr output, got %q", stderr.String())
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("ignored")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger must not be enabled")
	}
}
