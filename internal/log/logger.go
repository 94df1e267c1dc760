// Package log provides result output and run reporting for layoutsyn.
// It prints synonym pairs, reports untranslatable words on request and
// tracks per-status statistics, which it can write out as a JSON or CSV
// report at the end of a run.
package log

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"layoutsyn/internal/concurrent"
	"layoutsyn/internal/config"
	"layoutsyn/internal/synonym"
)

// Pair is one discovered synonym.
type Pair struct {
	Word       string `json:"word"`
	Translated string `json:"translated"`
}

// Summary provides aggregate statistics for a scan.
type Summary struct {
	From           string        `json:"from"`
	To             string        `json:"to"`
	Dictionary     string        `json:"dictionary"`
	TotalWords     int           `json:"total_words"`
	Filtered       int           `json:"filtered"`
	Untranslatable int           `json:"untranslatable"`
	NoMatch        int           `json:"no_match"`
	Identical      int           `json:"identical"`
	Synonyms       int           `json:"synonyms"`
	Workers        int           `json:"workers"`
	ProcessingTime time.Duration `json:"processing_time"`
}

// Logger writes scan results. Pairs go to out, invalid-word lines and the
// human summary go to diag, and the optional report goes to cfg.LogFile.
// Logger is not safe for concurrent use; feed it from a single goroutine.
type Logger struct {
	config  *config.Config
	out     io.Writer
	diag    io.Writer
	report  io.WriteCloser
	pairs   []Pair
	invalid []string
	summary Summary
	err     error
}

// NewLogger creates a Logger, creating the report file when cfg.LogFile is set.
func NewLogger(cfg *config.Config, out, diag io.Writer) (*Logger, error) {
	l := &Logger{
		config: cfg,
		out:    out,
		diag:   diag,
		pairs:  []Pair{},
		summary: Summary{
			From:       cfg.From,
			To:         cfg.To,
			Dictionary: cfg.Dictionary,
			Workers:    cfg.Workers,
		},
	}

	if cfg.LogFile != "" {
		file, err := os.Create(cfg.LogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create log file %s: %w", cfg.LogFile, err)
		}
		l.report = file
	}

	return l, nil
}

// LogResult records the outcome of scanning one word. Synonym pairs are
// printed immediately unless output is sorted, in which case Flush prints them.
func (l *Logger) LogResult(result concurrent.ScanResult) {
	r := result.Result
	l.summary.TotalWords++

	switch r.Status {
	case synonym.StatusFiltered:
		l.summary.Filtered++
	case synonym.StatusUntranslatable:
		l.summary.Untranslatable++
		l.logInvalid(r.Word)
	case synonym.StatusNoMatch:
		l.summary.NoMatch++
	case synonym.StatusIdentical:
		l.summary.Identical++
	case synonym.StatusSynonym:
		l.summary.Synonyms++
		pair := Pair{Word: r.Word, Translated: r.Translated}
		l.pairs = append(l.pairs, pair)
		if !l.config.Sort {
			l.writePair(pair)
		}
	}
}

func (l *Logger) logInvalid(word string) {
	if !l.config.ReportInvalid || !l.config.ShouldLog() {
		return
	}
	l.invalid = append(l.invalid, word)
	if !l.config.Sort {
		l.write(l.diag, "%s was invalid\n", word)
	}
}

func (l *Logger) writePair(p Pair) {
	l.write(l.out, "%s,%s\n", p.Word, p.Translated)
}

func (l *Logger) write(w io.Writer, format string, args ...any) {
	if l.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		l.err = err
	}
}

// Flush prints buffered output in sorted order when sorting is enabled and
// returns the first write error seen.
func (l *Logger) Flush() error {
	if l.config.Sort {
		sort.Slice(l.pairs, func(i, j int) bool {
			if l.pairs[i].Word != l.pairs[j].Word {
				return l.pairs[i].Word < l.pairs[j].Word
			}
			return l.pairs[i].Translated < l.pairs[j].Translated
		})
		for _, p := range l.pairs {
			l.writePair(p)
		}

		sort.Strings(l.invalid)
		for _, w := range l.invalid {
			l.write(l.diag, "%s was invalid\n", w)
		}
	}
	return l.err
}

// Pairs returns the synonym pairs recorded so far.
func (l *Logger) Pairs() []Pair {
	return l.pairs
}

// Summary returns the statistics recorded so far.
func (l *Logger) Summary() Summary {
	return l.summary
}

// SetProcessingTime records the total scan duration for reporting.
func (l *Logger) SetProcessingTime(duration time.Duration) {
	l.summary.ProcessingTime = duration
}

// WriteReport writes the run report in the configured format when a log
// file was requested, or a human summary on the diagnostic writer in
// verbose mode.
func (l *Logger) WriteReport() error {
	if l.report == nil {
		if l.config.IsVerbose() {
			return l.writeSummaryReport(l.diag)
		}
		return nil
	}

	switch l.config.LogFormat {
	case config.LogFormatCSV:
		return l.writeCSVReport(l.report)
	default:
		return l.writeJSONReport(l.report)
	}
}

func (l *Logger) writeJSONReport(w io.Writer) error {
	report := struct {
		Summary Summary  `json:"summary"`
		Pairs   []Pair   `json:"pairs"`
		Invalid []string `json:"invalid,omitempty"`
	}{
		Summary: l.summary,
		Pairs:   l.pairs,
		Invalid: l.invalid,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func (l *Logger) writeCSVReport(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"word", "translated"}); err != nil {
		return err
	}
	for _, p := range l.pairs {
		if err := writer.Write([]string{p.Word, p.Translated}); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	fmt.Fprintf(w, "# layoutsyn CSV Report (%s -> %s)\n", l.summary.From, l.summary.To)
	fmt.Fprintf(w, "# Words scanned: %d\n", l.summary.TotalWords)
	fmt.Fprintf(w, "# Filtered: %d\n", l.summary.Filtered)
	fmt.Fprintf(w, "# Untranslatable: %d\n", l.summary.Untranslatable)
	fmt.Fprintf(w, "# Synonyms: %d\n", l.summary.Synonyms)
	fmt.Fprintf(w, "# Processing time: %v\n", l.summary.ProcessingTime)
	fmt.Fprintf(w, "#\n")

	return nil
}

func (l *Logger) writeSummaryReport(w io.Writer) error {
	fmt.Fprintf(w, "\n=== layoutsyn Summary (%s -> %s) ===\n", l.summary.From, l.summary.To)
	fmt.Fprintf(w, "Words scanned: %d\n", l.summary.TotalWords)
	fmt.Fprintf(w, "Filtered: %d\n", l.summary.Filtered)
	fmt.Fprintf(w, "Untranslatable: %d\n", l.summary.Untranslatable)
	fmt.Fprintf(w, "No match: %d\n", l.summary.NoMatch)
	if l.config.Distinct {
		fmt.Fprintf(w, "Identical: %d\n", l.summary.Identical)
	}
	fmt.Fprintf(w, "Synonyms: %d\n", l.summary.Synonyms)
	fmt.Fprintf(w, "Workers: %d\n", l.summary.Workers)
	_, err := fmt.Fprintf(w, "Processing time: %v\n", l.summary.ProcessingTime)
	return err
}

// Close releases the report file, if any.
func (l *Logger) Close() error {
	if l.report != nil {
		return l.report.Close()
	}
	return nil
}
