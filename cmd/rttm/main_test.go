package main

import (
	"testing"

	"github.com/agleyzer/rttm/pkg/rttm"
)

func TestParseSpeakerList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty string yields no speakers",
			input: "",
			want:  nil,
		},
		{
			name:  "single speaker",
			input: "spk01",
			want:  []string{"spk01"},
		},
		{
			name:  "multiple speakers",
			input: "spk01,spk02,spk03",
			want:  []string{"spk01", "spk02", "spk03"},
		},
		{
			name:  "whitespace around names is trimmed",
			input: " spk01 , spk02 ",
			want:  []string{"spk01", "spk02"},
		},
		{
			name:  "empty entries are dropped",
			input: "spk01,,spk02,",
			want:  []string{"spk01", "spk02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSpeakerList(tt.input)

			if len(got) != len(tt.want) {
				t.Fatalf("parseSpeakerList(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("parseSpeakerList(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterSpeakers(t *testing.T) {
	doc := &rttm.RTTM{}
	doc.Add(rttm.Segment{SpeakerName: "x", TurnOnset: 0})
	doc.Add(rttm.Segment{SpeakerName: "y", TurnOnset: 1})
	doc.Add(rttm.Segment{SpeakerName: "z", TurnOnset: 2})
	doc.Add(rttm.Segment{SpeakerName: "x", TurnOnset: 3})

	tests := []struct {
		name      string
		speakers  []string
		wantOnset []float64
	}{
		{
			name:      "single speaker",
			speakers:  []string{"y"},
			wantOnset: []float64{1},
		},
		{
			name:      "two speakers keep original interleaved order",
			speakers:  []string{"x", "z"},
			wantOnset: []float64{0, 2, 3},
		},
		{
			name:      "unknown speaker yields empty collection",
			speakers:  []string{"nobody"},
			wantOnset: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterSpeakers(doc, tt.speakers)

			if got.Len() != len(tt.wantOnset) {
				t.Fatalf("filterSpeakers() kept %d segments, want %d", got.Len(), len(tt.wantOnset))
			}
			for i, seg := range got.Segments() {
				if seg.TurnOnset != tt.wantOnset[i] {
					t.Errorf("segment[%d] onset = %v, want %v", i, seg.TurnOnset, tt.wantOnset[i])
				}
			}
		})
	}

	// The source collection is untouched.
	if doc.Len() != 4 {
		t.Errorf("source Len() = %d after filtering, want 4", doc.Len())
	}
}
