// Package rttm reads and writes Rich Transcription Time Marked (RTTM)
// speaker diarization files.
//
// RTTM is a plain-text format with one speaker turn per line and ten
// space-separated columns:
//
//	SPEAKER rec1_a 1 23.450 4.200 <NA> <NA> spk01 <NA> <NA>
//
// See the NIST RT-09 evaluation plan and the LDC RTTM v13 specification
// for the column definitions.
package rttm

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// fieldCount is the fixed number of columns in an RTTM record.
const fieldCount = 10

// delimiter separates fields within a record line.
const delimiter = " "

// Segment represents a single row in an RTTM file: one speaker turn.
type Segment struct {
	// SegmentType is the record type; should always be "SPEAKER"
	SegmentType string

	// FileID is the recording identifier; basename of the recording
	// minus extension (e.g., "rec1_a")
	FileID string

	// ChannelID is the 1-indexed channel the turn is on; should always be 1
	ChannelID int

	// TurnOnset is the onset of the turn in seconds from the beginning
	// of the recording
	TurnOnset float64

	// TurnDuration is the duration of the turn in seconds
	TurnDuration float64

	// Orthography is the orthography field; should always be "<NA>"
	Orthography string

	// SpeakerType is the speaker type; should always be "<NA>"
	SpeakerType string

	// SpeakerName is the name of the speaker of the turn; should be
	// unique within the scope of each file
	SpeakerName string

	// Confidence is the system confidence that the information is
	// correct; should always be "<NA>"
	Confidence string

	// SignalLookahead is the signal lookahead time; should always be "<NA>"
	SignalLookahead string
}

// Timespan is a start/end pair in seconds.
type Timespan struct {
	Start float64
	End   float64
}

// TimespanMS is a start/end pair in milliseconds.
type TimespanMS struct {
	Start int64
	End   int64
}

// ParseSegment parses a single RTTM line into a Segment.
//
// The line is split on single spaces with no trimming and no delimiter
// collapsing, so consecutive spaces yield empty fields. A line with more
// than ten fields fails with *AlignmentError. A line with fewer than ten
// fields leaves the missing trailing fields at their zero values; numeric
// columns are only parsed when present. Non-numeric text in the channel
// column fails with *ParseIntError, in the onset or duration columns with
// *ParseFloatError.
func ParseSegment(line string) (Segment, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) > fieldCount {
		return Segment{}, &AlignmentError{Index: fieldCount + 1}
	}

	var seg Segment
	n := len(fields)

	if n > 0 {
		seg.SegmentType = fields[0]
	}
	if n > 1 {
		seg.FileID = fields[1]
	}
	if n > 2 {
		// Unsigned parse: the channel column is non-negative.
		channel, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			return Segment{}, &ParseIntError{Err: err}
		}
		seg.ChannelID = int(channel)
	}
	if n > 3 {
		onset, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return Segment{}, &ParseFloatError{Err: err}
		}
		seg.TurnOnset = onset
	}
	if n > 4 {
		duration, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return Segment{}, &ParseFloatError{Err: err}
		}
		seg.TurnDuration = duration
	}
	if n > 5 {
		seg.Orthography = fields[5]
	}
	if n > 6 {
		seg.SpeakerType = fields[6]
	}
	if n > 7 {
		seg.SpeakerName = fields[7]
	}
	if n > 8 {
		seg.Confidence = fields[8]
	}
	if n > 9 {
		seg.SignalLookahead = fields[9]
	}

	return seg, nil
}

// String returns the segment as a single RTTM line.
//
// Floats use the shortest decimal form that round-trips; no escaping is
// performed, so a text field containing a space will reshape the record
// on the next parse. That is a limitation of the format itself.
func (s Segment) String() string {
	return strings.Join([]string{
		s.SegmentType,
		s.FileID,
		strconv.Itoa(s.ChannelID),
		formatSeconds(s.TurnOnset),
		formatSeconds(s.TurnDuration),
		s.Orthography,
		s.SpeakerType,
		s.SpeakerName,
		s.Confidence,
		s.SignalLookahead,
	}, delimiter)
}

// Timespan returns the turn's start and end time in seconds.
func (s Segment) Timespan() Timespan {
	return Timespan{
		Start: s.TurnOnset,
		End:   s.TurnOnset + s.TurnDuration,
	}
}

// TimespanMS returns the turn's start and end time in milliseconds,
// rounded to the nearest whole millisecond.
func (s Segment) TimespanMS() TimespanMS {
	return TimespanMS{
		Start: int64(math.Round(1000 * s.TurnOnset)),
		End:   int64(math.Round(1000 * (s.TurnOnset + s.TurnDuration))),
	}
}

// Duration returns the turn duration as a time.Duration.
func (s Segment) Duration() time.Duration {
	return time.Duration(s.TurnDuration * float64(time.Second))
}

// Milliseconds returns the turn duration in whole milliseconds,
// truncating any sub-millisecond remainder.
func (s Segment) Milliseconds() int64 {
	return s.Duration().Milliseconds()
}

// formatSeconds renders a float64 second value in decimal notation,
// using the shortest representation that parses back to the same value.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
