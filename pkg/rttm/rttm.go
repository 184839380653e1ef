package rttm

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"
)

// RTTM is an ordered collection of segments, in file line order.
//
// The zero value is an empty, usable collection. The collection owns its
// segments: accessors hand out value copies, so mutating a returned
// segment never affects the collection. RTTM is not safe for concurrent
// use; callers needing that must serialize access externally.
type RTTM struct {
	segments []Segment
}

// Read reads an RTTM file from path.
//
// When continueOnError is true, an I/O fault while reading lines is
// tolerated: the segments read before the fault are kept and the
// unreadable remainder is ignored. Parse failures are never tolerated
// and always abort the read, regardless of the flag.
func Read(path string, continueOnError bool) (*RTTM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Err: err}
	}
	defer f.Close()

	return Decode(f, continueOnError)
}

// Decode reads RTTM records from r, one per line.
//
// Every line is parsed, including blank ones, which yield a segment with
// all fields at their zero values. Error tolerance matches Read.
func Decode(r io.Reader, continueOnError bool) (*RTTM, error) {
	doc := &RTTM{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		seg, err := ParseSegment(scanner.Text())
		if err != nil {
			return nil, err
		}
		doc.segments = append(doc.segments, seg)
	}

	if err := scanner.Err(); err != nil {
		if continueOnError {
			return doc, nil
		}
		return nil, &IOError{Err: err}
	}

	return doc, nil
}

// Write writes the collection to path, overwriting any existing file.
// A failure leaves the destination in an undefined partial state.
func (r *RTTM) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Err: err}
	}

	if _, err := io.WriteString(f, r.String()); err != nil {
		f.Close()
		return &IOError{Err: err}
	}

	if err := f.Close(); err != nil {
		return &IOError{Err: err}
	}

	return nil
}

// String returns the collection in RTTM file form: one segment per line,
// joined by newlines, with no trailing newline.
func (r *RTTM) String() string {
	var b strings.Builder
	for i, seg := range r.segments {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Len returns the number of segments.
func (r *RTTM) Len() int {
	return len(r.segments)
}

// Segments returns a copy of the contained segments in order.
func (r *RTTM) Segments() []Segment {
	out := make([]Segment, len(r.segments))
	copy(out, r.segments)
	return out
}

// Add appends a copy of seg in last position.
func (r *RTTM) Add(seg Segment) {
	r.segments = append(r.segments, seg)
}

// Pop removes and returns the last segment.
// The second return value is false if the collection is empty.
func (r *RTTM) Pop() (Segment, bool) {
	if len(r.segments) == 0 {
		return Segment{}, false
	}
	last := r.segments[len(r.segments)-1]
	r.segments = r.segments[:len(r.segments)-1]
	return last, true
}

// Del removes and returns the segment at index, shifting later segments
// down by one. The second return value is false if index is out of
// bounds, in which case the collection is unchanged.
func (r *RTTM) Del(index int) (Segment, bool) {
	if index < 0 || index >= len(r.segments) {
		return Segment{}, false
	}
	removed := r.segments[index]
	r.segments = append(r.segments[:index], r.segments[index+1:]...)
	return removed, true
}

// Speakers returns the sorted list of unique speaker names.
func (r *RTTM) Speakers() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, seg := range r.segments {
		if _, ok := seen[seg.SpeakerName]; ok {
			continue
		}
		seen[seg.SpeakerName] = struct{}{}
		names = append(names, seg.SpeakerName)
	}
	sort.Strings(names)
	return names
}

// NumSpeakers returns the number of unique speaker names.
func (r *RTTM) NumSpeakers() int {
	seen := make(map[string]struct{})
	for _, seg := range r.segments {
		seen[seg.SpeakerName] = struct{}{}
	}
	return len(seen)
}

// Find returns the first segment with the given speaker name.
// The second return value is false if no segment matches.
func (r *RTTM) Find(speaker string) (Segment, bool) {
	for _, seg := range r.segments {
		if seg.SpeakerName == speaker {
			return seg, true
		}
	}
	return Segment{}, false
}

// Filter returns a new collection containing only segments with the
// given speaker name, in their original relative order. The result is
// independent of the receiver.
func (r *RTTM) Filter(speaker string) *RTTM {
	filtered := &RTTM{}
	for _, seg := range r.segments {
		if seg.SpeakerName == speaker {
			filtered.segments = append(filtered.segments, seg)
		}
	}
	return filtered
}

// Timespans returns every segment's start/end pair in seconds, in order.
func (r *RTTM) Timespans() []Timespan {
	spans := make([]Timespan, len(r.segments))
	for i, seg := range r.segments {
		spans[i] = seg.Timespan()
	}
	return spans
}

// TimespansMS returns every segment's start/end pair in milliseconds,
// in order.
func (r *RTTM) TimespansMS() []TimespanMS {
	spans := make([]TimespanMS, len(r.segments))
	for i, seg := range r.segments {
		spans[i] = seg.TimespanMS()
	}
	return spans
}

// DurationSpeaker returns the total duration in seconds of all turns by
// the given speaker. Returns 0 if the speaker has no turns.
func (r *RTTM) DurationSpeaker(speaker string) float64 {
	var total float64
	for _, seg := range r.segments {
		if seg.SpeakerName == speaker {
			total += seg.TurnDuration
		}
	}
	return total
}

// DurationTotal returns the total duration in seconds of all turns.
func (r *RTTM) DurationTotal() float64 {
	var total float64
	for _, seg := range r.segments {
		total += seg.TurnDuration
	}
	return total
}
