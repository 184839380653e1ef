// Package report builds per-speaker statistics over an RTTM collection.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/agleyzer/rttm/pkg/rttm"
)

// SpeakerStats holds the aggregate figures for one speaker.
type SpeakerStats struct {
	// Name is the speaker name as it appears in the file
	Name string

	// Turns is the number of segments attributed to the speaker
	Turns int

	// Duration is the summed turn duration in seconds
	Duration float64
}

// Report is a snapshot of a collection's aggregate statistics.
type Report struct {
	// Segments is the total number of segments
	Segments int

	// TotalDuration is the summed duration of all turns in seconds
	TotalDuration float64

	// Speakers holds per-speaker figures, sorted by speaker name
	Speakers []SpeakerStats
}

// Build computes a report over doc.
func Build(doc *rttm.RTTM) Report {
	r := Report{
		Segments:      doc.Len(),
		TotalDuration: doc.DurationTotal(),
	}

	for _, name := range doc.Speakers() {
		r.Speakers = append(r.Speakers, SpeakerStats{
			Name:     name,
			Turns:    doc.Filter(name).Len(),
			Duration: doc.DurationSpeaker(name),
		})
	}

	return r
}

// Render returns the report as an aligned plain-text table.
func (r Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "segments: %d\n", r.Segments)
	fmt.Fprintf(&b, "speakers: %d\n", len(r.Speakers))
	fmt.Fprintf(&b, "total duration: %.3fs\n", r.TotalDuration)

	if len(r.Speakers) == 0 {
		return b.String()
	}

	b.WriteString("\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPEAKER\tTURNS\tDURATION\tSHARE")
	for _, s := range r.Speakers {
		fmt.Fprintf(w, "%s\t%d\t%.3fs\t%s\n", s.Name, s.Turns, s.Duration, share(s.Duration, r.TotalDuration))
	}
	w.Flush()

	return b.String()
}

// share formats a duration as a percentage of the total.
func share(duration, total float64) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*duration/total)
}
