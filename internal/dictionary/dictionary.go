// Package dictionary loads word lists into a read-only set of known words.
// A word list is plain text with one word per line; the set keeps the order
// in which words were first seen so scans over it are reproducible.
package dictionary

import (
	"bufio"
	"io"
	"os"
	"strings"

	"layoutsyn/internal/errors"
)

// maxLineLength bounds a single dictionary line.
const maxLineLength = 1 << 20

// Dictionary is a deduplicated set of words. It is never mutated after
// loading and is safe for concurrent reads.
type Dictionary struct {
	words []string
	set   map[string]struct{}
}

// New creates a Dictionary from the given words, dropping duplicates and
// empty strings while keeping first-seen order.
func New(words []string) *Dictionary {
	d := &Dictionary{
		set: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		d.add(w)
	}
	return d
}

func (d *Dictionary) add(word string) {
	if word == "" {
		return
	}
	if _, ok := d.set[word]; ok {
		return
	}
	d.set[word] = struct{}{}
	d.words = append(d.words, word)
}

// Load reads the word list at filePath.
func Load(filePath string) (*Dictionary, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.WrapFileError(filePath, err)
	}
	defer file.Close()

	return Read(file, filePath)
}

// Read parses a newline-delimited word list from reader. A trailing carriage
// return is stripped from every line so CRLF files load the same as LF
// files; blank lines are skipped and no other whitespace is trimmed.
// filePath is only used for error context.
func Read(reader io.Reader, filePath string) (*Dictionary, error) {
	d := &Dictionary{
		set: make(map[string]struct{}),
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		d.add(strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewDictionaryError(filePath, "failed to read word list", err)
	}

	return d, nil
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.set[word]
	return ok
}

// Words returns the words in first-seen order. The slice must not be modified.
func (d *Dictionary) Words() []string {
	return d.words
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.words)
}
