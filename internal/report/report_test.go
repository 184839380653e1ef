package report

import (
	"strings"
	"testing"

	"github.com/agleyzer/rttm/pkg/rttm"
)

func buildDoc(t *testing.T) *rttm.RTTM {
	t.Helper()

	doc := &rttm.RTTM{}
	doc.Add(rttm.Segment{SpeakerName: "spk02", TurnDuration: 1.0})
	doc.Add(rttm.Segment{SpeakerName: "spk01", TurnDuration: 2.0})
	doc.Add(rttm.Segment{SpeakerName: "spk01", TurnDuration: 1.0})
	return doc
}

func TestBuild(t *testing.T) {
	r := Build(buildDoc(t))

	if r.Segments != 3 {
		t.Errorf("Segments = %d, want 3", r.Segments)
	}
	if r.TotalDuration != 4.0 {
		t.Errorf("TotalDuration = %v, want 4", r.TotalDuration)
	}
	if len(r.Speakers) != 2 {
		t.Fatalf("len(Speakers) = %d, want 2", len(r.Speakers))
	}

	// Speakers are sorted by name.
	first := r.Speakers[0]
	if first.Name != "spk01" || first.Turns != 2 || first.Duration != 3.0 {
		t.Errorf("Speakers[0] = %+v, want {spk01 2 3}", first)
	}
	second := r.Speakers[1]
	if second.Name != "spk02" || second.Turns != 1 || second.Duration != 1.0 {
		t.Errorf("Speakers[1] = %+v, want {spk02 1 1}", second)
	}
}

func TestBuild_Empty(t *testing.T) {
	r := Build(&rttm.RTTM{})

	if r.Segments != 0 || r.TotalDuration != 0 || len(r.Speakers) != 0 {
		t.Errorf("empty report = %+v, want all zero", r)
	}

	out := r.Render()
	if !strings.Contains(out, "segments: 0") {
		t.Errorf("Render() = %q, missing segment count", out)
	}
	if strings.Contains(out, "SPEAKER") {
		t.Errorf("Render() of empty report contains a speaker table:\n%s", out)
	}
}

func TestRender(t *testing.T) {
	out := Build(buildDoc(t)).Render()

	for _, want := range []string{
		"segments: 3",
		"speakers: 2",
		"total duration: 4.000s",
		"spk01",
		"75.0%",
		"spk02",
		"25.0%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}

	// spk01 sorts before spk02 in the table.
	if strings.Index(out, "spk01") > strings.Index(out, "spk02") {
		t.Errorf("speaker rows out of order:\n%s", out)
	}
}
