package eventlog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Mavwarf/splashgen/internal/runner"
)

// EntryKind classifies a log entry.
type EntryKind int

const (
	KindResult EntryKind = iota
	KindRun
)

// Entry is a single parsed log entry. Result entries carry the file, size,
// device and error; run entries carry the ok/failed counts.
type Entry struct {
	Time    time.Time
	Kind    EntryKind
	File    string
	Width   int
	Height  int
	Device  string
	Error   string
	OK      int
	Failed  int
	Elapsed time.Duration
}

// Succeeded reports whether a result entry records a successful attempt.
func (e Entry) Succeeded() bool {
	return e.Kind == KindResult && e.Error == ""
}

// KindString returns a short label for k.
func KindString(k EntryKind) string {
	switch k {
	case KindResult:
		return "result"
	case KindRun:
		return "run"
	default:
		return "unknown"
	}
}

// resultEntry converts a runner result into an entry stamped with ts.
func resultEntry(ts time.Time, r runner.Result) Entry {
	e := Entry{
		Time:    ts,
		Kind:    KindResult,
		File:    r.Spec.Name,
		Width:   r.Spec.Width,
		Height:  r.Spec.Height,
		Device:  r.Spec.Device,
		Elapsed: r.Elapsed.Round(time.Millisecond),
	}
	if r.Err != nil {
		e.Error = r.Err.Error()
	}
	return e
}

// runEntry converts a run summary into an entry stamped with ts.
func runEntry(ts time.Time, s runner.Summary) Entry {
	return Entry{
		Time:    ts,
		Kind:    KindRun,
		OK:      s.OK(),
		Failed:  s.Failed(),
		Elapsed: s.Elapsed.Round(time.Millisecond),
	}
}

// FormatLine renders e as a single log line.
func FormatLine(e Entry) string {
	ts := e.Time.Format(time.RFC3339)
	if e.Kind == KindRun {
		return fmt.Sprintf("%s  run=done  ok=%d  failed=%d  elapsed=%s", ts, e.OK, e.Failed, e.Elapsed)
	}
	line := fmt.Sprintf("%s  file=%s  size=%dx%d  device=%q", ts, e.File, e.Width, e.Height, e.Device)
	if e.Error == "" {
		line += "  status=ok"
	} else {
		line += fmt.Sprintf("  status=failed  error=%q", e.Error)
	}
	return line + fmt.Sprintf("  elapsed=%s", e.Elapsed)
}

// ParseEntries parses log content line by line. Blank lines separate runs
// and are skipped, as are malformed lines.
func ParseEntries(content string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(content, "\n") {
		if e, ok := ParseLine(strings.TrimRight(line, "\r")); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// ParseLine parses one line written by FormatLine.
func ParseLine(line string) (Entry, bool) {
	ts, ok := ExtractTimestamp(line)
	if !ok {
		return Entry{}, false
	}
	fields := parseFields(line[strings.Index(line, "  "):])

	e := Entry{Time: ts}
	if d, err := time.ParseDuration(fields["elapsed"]); err == nil {
		e.Elapsed = d
	}

	if fields["run"] != "" {
		e.Kind = KindRun
		e.OK, _ = strconv.Atoi(fields["ok"])
		e.Failed, _ = strconv.Atoi(fields["failed"])
		return e, true
	}

	e.Kind = KindResult
	e.File = fields["file"]
	if e.File == "" {
		return Entry{}, false
	}
	if w, h, found := strings.Cut(fields["size"], "x"); found {
		e.Width, _ = strconv.Atoi(w)
		e.Height, _ = strconv.Atoi(h)
	}
	e.Device = fields["device"]
	if fields["status"] != "ok" {
		e.Error = fields["error"]
		if e.Error == "" {
			e.Error = "unknown error"
		}
	}
	return e, true
}

// ExtractTimestamp parses the RFC3339 timestamp that starts every line.
func ExtractTimestamp(line string) (time.Time, bool) {
	tsEnd := strings.Index(line, "  ")
	if tsEnd < 0 {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, line[:tsEnd])
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// parseFields splits `key=value` pairs separated by spaces. Values written
// with %q are unquoted.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for {
		s = strings.TrimLeft(s, " ")
		if s == "" {
			return fields
		}
		eq := strings.IndexByte(s, '=')
		if eq < 0 {
			return fields
		}
		key := s[:eq]
		s = s[eq+1:]

		if strings.HasPrefix(s, `"`) {
			q, err := strconv.QuotedPrefix(s)
			if err == nil {
				if v, err := strconv.Unquote(q); err == nil {
					fields[key] = v
				}
				s = s[len(q):]
				continue
			}
		}
		end := strings.IndexByte(s, ' ')
		if end < 0 {
			end = len(s)
		}
		fields[key] = s[:end]
		s = s[end:]
	}
}
