package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "dexter.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
		{"read one", 1, expectedAll[9:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestParse(t *testing.T) {
	line := `{"level":"info","ts":"2026-10-19T09:15:02.123Z","caller":"app/fetch.go:103","msg":"catalog loaded","run":"r1","entities":151,"max_in_flight":0}`
	e := Parse(line)

	if e.Level != "info" || e.Message != "catalog loaded" || e.Run != "r1" {
		t.Fatalf("Parse() = %+v", e)
	}
	want := time.Date(2026, 10, 19, 9, 15, 2, 123_000_000, time.UTC)
	if !e.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", e.Time, want)
	}
	if len(e.Fields) != 2 || e.Fields["entities"] != float64(151) {
		t.Fatalf("Fields = %v", e.Fields)
	}
	if _, ok := e.Fields["caller"]; ok {
		t.Fatalf("caller should not be a field")
	}
}

func TestParse_NonJSON(t *testing.T) {
	e := Parse("panic: boom")
	if e.Raw != "panic: boom" || e.Level != "" {
		t.Fatalf("Parse(non-json) = %+v", e)
	}
	if got := e.Format(); got != "panic: boom" {
		t.Fatalf("Format() = %q", got)
	}
}

func TestFormat(t *testing.T) {
	e := Entry{
		Level:   "error",
		Message: "catalog load failed",
		Fields:  map[string]any{"error": "boom", "attempt": float64(1)},
	}
	if got, want := e.Format(), "ERROR catalog load failed attempt=1 error=boom"; got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	if got := e.Colorize(); got != e.Format() {
		t.Fatalf("Colorize() without a color profile = %q, want %q", got, e.Format())
	}
}

func TestRunFiltering(t *testing.T) {
	entries := ParseLines([]string{
		`{"level":"info","msg":"a","run":"r1"}`,
		`{"level":"info","msg":"b","run":"r2"}`,
		`not json`,
		`{"level":"info","msg":"c","run":"r2"}`,
	})
	if got := LastRun(entries); got != "r2" {
		t.Fatalf("LastRun = %q, want r2", got)
	}
	got := FilterRun(entries, "r2")
	if len(got) != 2 || got[0].Message != "b" || got[1].Message != "c" {
		t.Fatalf("FilterRun = %+v", got)
	}
	if len(FilterRun(entries, "")) != 4 {
		t.Fatalf("empty run should keep everything")
	}
	if LastRun(nil) != "" {
		t.Fatalf("LastRun(nil) should be empty")
	}
}
