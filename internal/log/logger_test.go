package log

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layoutsyn/internal/concurrent"
	"layoutsyn/internal/config"
	"layoutsyn/internal/synonym"
)

func result(word, translated string, status synonym.Status) concurrent.ScanResult {
	return concurrent.ScanResult{
		Job:    concurrent.ScanJob{Word: word},
		Result: synonym.Result{Word: word, Translated: translated, Status: status},
	}
}

func sampleResults() []concurrent.ScanResult {
	return []concurrent.ScanResult{
		result("jay", "", synonym.StatusNoMatch),
		result("cat", "jay", synonym.StatusSynonym),
		result("a", "", synonym.StatusFiltered),
		result("r2d2", "", synonym.StatusUntranslatable),
		result("abc", "abc", synonym.StatusIdentical),
		result("apple", "axxle", synonym.StatusSynonym),
		result("e-mail", "", synonym.StatusUntranslatable),
	}
}

func newTestLogger(t *testing.T, cfg *config.Config) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, diag bytes.Buffer
	logger, err := NewLogger(cfg, &out, &diag)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger, &out, &diag
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
	}{
		{
			name:   "logger without report",
			config: &config.Config{From: "qwerty", To: "dvorak"},
		},
		{
			name:   "logger with report file",
			config: &config.Config{LogFile: filepath.Join(t.TempDir(), "report.json")},
		},
		{
			name:        "logger with invalid report path",
			config:      &config.Config{LogFile: "/invalid/path/that/does/not/exist/report.json"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.config, &bytes.Buffer{}, &bytes.Buffer{})
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Same(t, tt.config, logger.config)
			assert.Equal(t, tt.config.From, logger.summary.From)
			assert.NotNil(t, logger.pairs)
			assert.NoError(t, logger.Close())
		})
	}
}

func TestLogResultCounts(t *testing.T) {
	logger, _, _ := newTestLogger(t, &config.Config{Sort: true})

	for _, r := range sampleResults() {
		logger.LogResult(r)
	}

	s := logger.Summary()
	assert.Equal(t, 7, s.TotalWords)
	assert.Equal(t, 1, s.Filtered)
	assert.Equal(t, 2, s.Untranslatable)
	assert.Equal(t, 1, s.NoMatch)
	assert.Equal(t, 1, s.Identical)
	assert.Equal(t, 2, s.Synonyms)
	assert.Len(t, logger.Pairs(), 2)
}

func TestSortedOutput(t *testing.T) {
	logger, out, diag := newTestLogger(t, &config.Config{Sort: true, ReportInvalid: true})

	for _, r := range sampleResults() {
		logger.LogResult(r)
	}
	assert.Empty(t, out.String(), "sorted output is buffered until Flush")

	require.NoError(t, logger.Flush())
	assert.Equal(t, "apple,axxle\ncat,jay\n", out.String())
	assert.Equal(t, "e-mail was invalid\nr2d2 was invalid\n", diag.String())
}

func TestUnsortedOutput(t *testing.T) {
	logger, out, diag := newTestLogger(t, &config.Config{Sort: false, ReportInvalid: true})

	for _, r := range sampleResults() {
		logger.LogResult(r)
	}
	assert.Equal(t, "cat,jay\napple,axxle\n", out.String())
	assert.Equal(t, "r2d2 was invalid\ne-mail was invalid\n", diag.String())

	require.NoError(t, logger.Flush())
	assert.Equal(t, "cat,jay\napple,axxle\n", out.String(), "flush does not repeat pairs")
}

func TestInvalidNotReported(t *testing.T) {
	tests := []struct {
		name   string
		config *config.Config
	}{
		{name: "flag off", config: &config.Config{Sort: true}},
		{name: "quiet", config: &config.Config{Sort: true, ReportInvalid: true, Quiet: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, out, diag := newTestLogger(t, tt.config)
			for _, r := range sampleResults() {
				logger.LogResult(r)
			}
			require.NoError(t, logger.Flush())

			assert.Equal(t, "apple,axxle\ncat,jay\n", out.String())
			assert.Empty(t, diag.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestFlushReturnsWriteError(t *testing.T) {
	logger, err := NewLogger(&config.Config{Sort: true}, failingWriter{}, &bytes.Buffer{})
	require.NoError(t, err)

	logger.LogResult(result("cat", "jay", synonym.StatusSynonym))
	assert.EqualError(t, logger.Flush(), "broken pipe")
}

func TestSetProcessingTime(t *testing.T) {
	logger, _, _ := newTestLogger(t, &config.Config{})

	logger.SetProcessingTime(5 * time.Second)
	assert.Equal(t, 5*time.Second, logger.Summary().ProcessingTime)
}

func TestWriteJSONReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	cfg := &config.Config{From: "qwerty", To: "dvorak", Sort: true, LogFile: path, LogFormat: config.LogFormatJSON}
	logger, _, _ := newTestLogger(t, cfg)

	for _, r := range sampleResults() {
		logger.LogResult(r)
	}
	require.NoError(t, logger.Flush())
	logger.SetProcessingTime(time.Second)
	require.NoError(t, logger.WriteReport())
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report struct {
		Summary Summary `json:"summary"`
		Pairs   []Pair  `json:"pairs"`
	}
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, "qwerty", report.Summary.From)
	assert.Equal(t, 7, report.Summary.TotalWords)
	assert.Equal(t, 2, report.Summary.Synonyms)
	assert.Equal(t, time.Second, report.Summary.ProcessingTime)
	assert.Equal(t, []Pair{{Word: "apple", Translated: "axxle"}, {Word: "cat", Translated: "jay"}}, report.Pairs)
}

func TestWriteCSVReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	cfg := &config.Config{From: "qwerty", To: "dvorak", Sort: true, LogFile: path, LogFormat: config.LogFormatCSV}
	logger, _, _ := newTestLogger(t, cfg)

	for _, r := range sampleResults() {
		logger.LogResult(r)
	}
	require.NoError(t, logger.Flush())
	require.NoError(t, logger.WriteReport())
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var csvLines, commentLines []string
	for _, line := range strings.Split(string(data), "\n") {
		switch {
		case strings.HasPrefix(line, "#"):
			commentLines = append(commentLines, line)
		case strings.TrimSpace(line) != "":
			csvLines = append(csvLines, line)
		}
	}

	records, err := csv.NewReader(strings.NewReader(strings.Join(csvLines, "\n"))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"word", "translated"},
		{"apple", "axxle"},
		{"cat", "jay"},
	}, records)

	require.NotEmpty(t, commentLines)
	assert.Equal(t, "# layoutsyn CSV Report (qwerty -> dvorak)", commentLines[0])
	assert.Contains(t, commentLines, "# Synonyms: 2")
}

func TestWriteSummaryReport(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.Config
		wantSummary bool
	}{
		{name: "verbose", config: &config.Config{Verbose: true, Distinct: true}, wantSummary: true},
		{name: "not verbose", config: &config.Config{}},
		{name: "quiet overrides verbose", config: &config.Config{Verbose: true, Quiet: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, out, diag := newTestLogger(t, tt.config)
			for _, r := range sampleResults() {
				logger.LogResult(r)
			}
			require.NoError(t, logger.WriteReport())

			assert.NotContains(t, out.String(), "Summary")
			if !tt.wantSummary {
				assert.Empty(t, diag.String())
				return
			}
			assert.Contains(t, diag.String(), "Words scanned: 7")
			assert.Contains(t, diag.String(), "Identical: 1")
			assert.Contains(t, diag.String(), "Synonyms: 2")
		})
	}
}

func TestNewDiagnostics(t *testing.T) {
	tests := []struct {
		name      string
		config    *config.Config
		wantInfo  bool
		wantDebug bool
		wantWarn  bool
	}{
		{name: "default", config: &config.Config{}, wantWarn: true},
		{name: "verbose", config: &config.Config{Verbose: true}, wantInfo: true, wantWarn: true},
		{name: "debug", config: &config.Config{Debug: true}, wantInfo: true, wantDebug: true, wantWarn: true},
		{name: "quiet", config: &config.Config{Verbose: true, Debug: true, Quiet: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewDiagnostics(tt.config, &buf)

			logger.Debug("scan.word", "word", "cat")
			logger.Info("dictionary.loaded", "words", 2)
			logger.Warn("scan.slow")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "scan.word"))
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "dictionary.loaded"))
			assert.Equal(t, tt.wantWarn, strings.Contains(out, "scan.slow"))
		})
	}
}
