package geom

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestSilentHandler(t *testing.T) {
	h := silentHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("silentHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("silentHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(silentHandler); !ok {
		t.Error("silentHandler.WithAttrs() did not return silentHandler")
	}
	if _, ok := h.WithGroup("group").(silentHandler); !ok {
		t.Error("silentHandler.WithGroup() did not return silentHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should install the silent logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return &buf
}

func TestInvertLogsSingularFallback(t *testing.T) {
	buf := captureLogs(t)

	Matrix{}.Invert()
	if !strings.Contains(buf.String(), "not invertible") {
		t.Errorf("expected singular fallback to be logged, got: %s", buf.String())
	}

	buf.Reset()
	Scale(2, 2).Invert()
	if buf.Len() != 0 {
		t.Errorf("invertible matrix should not log, got: %s", buf.String())
	}
}

func TestConversionLogsClamp(t *testing.T) {
	buf := captureLogs(t)

	R(0, 0, 1e12, 1).Cover()
	if !strings.Contains(buf.String(), "clamped") {
		t.Errorf("expected clamp to be logged, got: %s", buf.String())
	}

	buf.Reset()
	R(0, 0, 10, 10).Round()
	if buf.Len() != 0 {
		t.Errorf("in-range conversion should not log, got: %s", buf.String())
	}
}

func TestDebugEnabled(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	tests := []struct {
		name   string
		logger *slog.Logger
		want   bool
	}{
		{"silent default", nil, false},
		{"info level", slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})), false},
		{"debug level", slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug})), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetLogger(tt.logger)
			if got := debugEnabled(); got != tt.want {
				t.Errorf("debugEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInfoLoggerSkipsFallbackRecords(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	Matrix{}.Invert()
	R(0, 0, 1e12, 1).Cover()
	if buf.Len() != 0 {
		t.Errorf("info logger received debug records: %s", buf.String())
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100

	for range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if Logger() == nil {
				t.Error("Logger() returned nil during concurrent access")
			}
			Matrix{}.Invert()
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}

	wg.Wait()
}

func BenchmarkLoggerDisabledInvert(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Matrix{}.Invert()
	}
}
