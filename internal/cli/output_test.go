package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pfrederiksen/boulder-events/internal/event"
	"github.com/pfrederiksen/boulder-events/internal/pipeline"
)

func TestWriteSummaryText(t *testing.T) {
	summary := &pipeline.Summary{
		RunID: "test-run",
		Sources: []pipeline.SourceCount{
			{Name: "velvet_elk", Extracted: 10, Added: 8, Duplicates: 2},
			{Name: "summer_series", Failed: true},
		},
		TotalEvents:   42,
		NewEvents:     8,
		Duplicates:    2,
		UnparsedDates: 1,
	}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, summary, FormatText); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"velvet_elk", "summer_series", "(failed)", "New events:     8", "Dataset total:  42"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Past skipped") {
		t.Errorf("past skipped line should be omitted when zero:\n%s", out)
	}
}

func TestWriteSummaryJSON(t *testing.T) {
	summary := &pipeline.Summary{RunID: "test-run", NewEvents: 3}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, summary, FormatJSON); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}

	var decoded pipeline.Summary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.RunID != "test-run" || decoded.NewEvents != 3 {
		t.Errorf("round-trip mismatch: %+v", decoded)
	}
}

func TestWriteEvents(t *testing.T) {
	events := []*event.Event{
		{
			Title:          "Trivia Night",
			Venue:          "The Velvet Elk Lounge",
			NormalizedDate: "2030-06-15",
			Time:           "7:00 PM",
			EventTypeTags:  []string{"Trivia"},
			Link:           "https://example.com/trivia",
		},
		{
			Title:     "Open Mic",
			Venue:     "License No. 1",
			Recurring: "Every Tuesday",
		},
	}

	tests := []struct {
		name    string
		verbose bool
		want    []string
		exclude []string
	}{
		{
			name:    "plain",
			want:    []string{"2030-06-15", "Trivia Night @ The Velvet Elk Lounge (7:00 PM)", "Every Tuesday", "2 event(s)"},
			exclude: []string{"tags:", "https://example.com/trivia"},
		},
		{
			name:    "verbose",
			verbose: true,
			want:    []string{"tags: Trivia", "https://example.com/trivia"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteEvents(&buf, events, FormatText, tt.verbose); err != nil {
				t.Fatalf("WriteEvents() error = %v", err)
			}
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, notWant := range tt.exclude {
				if strings.Contains(out, notWant) {
					t.Errorf("output should not contain %q:\n%s", notWant, out)
				}
			}
		})
	}
}

func TestWriteEventsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEvents(&buf, nil, FormatText, false); err != nil {
		t.Fatalf("WriteEvents() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No events found.") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestOutputFormatValidation(t *testing.T) {
	orig := flagFormat
	defer func() { flagFormat = orig }()

	flagFormat = "yaml"
	if _, err := outputFormat(); err == nil {
		t.Error("expected error for unsupported format")
	}

	flagFormat = "json"
	format, err := outputFormat()
	if err != nil {
		t.Fatalf("outputFormat() error = %v", err)
	}
	if format != FormatJSON {
		t.Errorf("format = %q, want %q", format, FormatJSON)
	}
}
