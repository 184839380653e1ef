// The rttm command inspects and filters RTTM speaker diarization files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/agleyzer/rttm/internal/report"
	"github.com/agleyzer/rttm/pkg/rttm"
)

const (
	version = "1.0.0"
)

func main() {
	// Parse command-line flags
	var (
		filter          = flag.String("filter", "", "Comma-separated list of speakers to keep (e.g., 'spk01,spk03'). Keeps all if not specified")
		output          = flag.String("o", "", "Write the resulting collection to this path instead of printing a report")
		continueOnError = flag.Bool("continue-on-error", false, "Tolerate I/O faults while reading lines; keep segments read so far")
		verbose         = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion     = flag.Bool("version", false, "Show version and exit")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "rttm - RTTM inspection tool v%s\n\n", version)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.rttm>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  <file.rttm>    Path of the RTTM file to read\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s meeting.rttm\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --filter spk01 meeting.rttm\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --filter spk01,spk02 -o subset.rttm meeting.rttm\n", os.Args[0])
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("rttm v%s\n", version)
		os.Exit(0)
	}

	// Check for file argument
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: RTTM file path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	path := flag.Arg(0)

	// Setup logger
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := run(path, *filter, *output, *continueOnError, logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(path, filter, output string, continueOnError bool, logger *slog.Logger) error {
	logger.Debug("reading RTTM file", "path", path, "continueOnError", continueOnError)

	doc, err := rttm.Read(path, continueOnError)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	logger.Debug("parsed RTTM file",
		"segments", doc.Len(),
		"speakers", doc.NumSpeakers(),
		"totalDuration", doc.DurationTotal(),
	)

	if speakers := parseSpeakerList(filter); len(speakers) > 0 {
		before := doc.Len()
		doc = filterSpeakers(doc, speakers)
		logger.Debug("applied speaker filter",
			"speakers", speakers,
			"originalSegments", before,
			"keptSegments", doc.Len(),
		)
	}

	if output != "" {
		if err := doc.Write(output); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		logger.Info("wrote RTTM file", "path", output, "segments", doc.Len())
		return nil
	}

	fmt.Print(report.Build(doc).Render())
	return nil
}

// parseSpeakerList splits a comma-separated speaker list, trimming
// whitespace around each name and dropping empty entries.
func parseSpeakerList(s string) []string {
	var speakers []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			speakers = append(speakers, name)
		}
	}
	return speakers
}

// filterSpeakers returns a new collection with only the named speakers,
// preserving the original segment order across speakers. Names match
// case-sensitively, like rttm.Filter.
func filterSpeakers(doc *rttm.RTTM, speakers []string) *rttm.RTTM {
	keep := make(map[string]struct{}, len(speakers))
	for _, name := range speakers {
		keep[name] = struct{}{}
	}

	filtered := &rttm.RTTM{}
	for _, seg := range doc.Segments() {
		if _, ok := keep[seg.SpeakerName]; ok {
			filtered.Add(seg)
		}
	}
	return filtered
}
