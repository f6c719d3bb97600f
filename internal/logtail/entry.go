package logtail

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// TimeLayout matches zapcore.ISO8601TimeEncoder.
const TimeLayout = "2006-01-02T15:04:05.000Z0700"

// Keys written by the logger itself rather than by call sites.
var reservedKeys = map[string]bool{
	"level": true, "ts": true, "msg": true, "caller": true,
	"run": true, "stacktrace": true, "logger": true,
}

// Entry is one decoded log line. Lines that are not JSON objects keep only
// Raw.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Run     string
	Fields  map[string]any
	Raw     string
}

// Parse decodes a JSON log line.
func Parse(line string) Entry {
	e := Entry{Raw: line}
	var obj map[string]any
	if err := json.Unmarshal([]byte(line), &obj); err != nil {
		return e
	}
	e.Level, _ = obj["level"].(string)
	e.Message, _ = obj["msg"].(string)
	e.Run, _ = obj["run"].(string)
	if ts, ok := obj["ts"].(string); ok {
		if t, err := time.Parse(TimeLayout, ts); err == nil {
			e.Time = t
		}
	}
	for k, v := range obj {
		if reservedKeys[k] {
			continue
		}
		if e.Fields == nil {
			e.Fields = make(map[string]any)
		}
		e.Fields[k] = v
	}
	return e
}

// ParseLines decodes every line.
func ParseLines(lines []string) []Entry {
	out := make([]Entry, len(lines))
	for i, l := range lines {
		out[i] = Parse(l)
	}
	return out
}

// LastRun returns the run id of the newest entry that has one.
func LastRun(entries []Entry) string {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Run != "" {
			return entries[i].Run
		}
	}
	return ""
}

// FilterRun keeps entries from one run. An empty run keeps everything.
func FilterRun(entries []Entry, run string) []Entry {
	if run == "" {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Run == run {
			out = append(out, e)
		}
	}
	return out
}

// Format renders the entry as "15:04:05 LEVEL message key=value ...".
// Fields are sorted by key.
func (e Entry) Format() string {
	if e.Level == "" && e.Message == "" {
		return e.Raw
	}
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format(time.TimeOnly))
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "%-5s %s", strings.ToUpper(e.Level), e.Message)
	b.WriteString(e.fieldSuffix())
	return b.String()
}

func (e Entry) fieldSuffix() string {
	if len(e.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF"))

	levelStyles = map[string]lipgloss.Style{
		"debug": lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		"info":  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		"warn":  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		"error": lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
)

// Colorize renders the entry like Format with the level, time and fields
// styled. Without a color profile the output equals Format.
func (e Entry) Colorize() string {
	if e.Level == "" && e.Message == "" {
		return e.Raw
	}
	var parts []string
	if !e.Time.IsZero() {
		parts = append(parts, timeStyle.Render(e.Time.Local().Format(time.TimeOnly)))
	}
	level := fmt.Sprintf("%-5s", strings.ToUpper(e.Level))
	if style, ok := levelStyles[strings.ToLower(e.Level)]; ok {
		level = style.Render(level)
	}
	parts = append(parts, level, e.Message)
	return strings.Join(parts, " ") + fieldStyle.Render(e.fieldSuffix())
}
