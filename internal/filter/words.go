// Package filter provides word filtering for synonym scans.
// It implements a composable filter system so that length limits and
// include/exclude patterns can be chained and evaluated in a single pass
// before a word is ever translated.
package filter

import (
	"path"
	"unicode/utf8"

	"layoutsyn/internal/config"
)

// WordFilter reports whether a word should be scanned.
type WordFilter func(word string) bool

// Chain is an ordered list of filters; a word must pass all of them.
type Chain []WordFilter

// Allow evaluates the chain, stopping at the first filter that rejects word.
func (c Chain) Allow(word string) bool {
	for _, f := range c {
		if !f(word) {
			return false
		}
	}
	return true
}

// BuildFilters assembles the filter chain described by cfg. Patterns are
// expected to have passed config validation.
func BuildFilters(cfg *config.Config) Chain {
	var filters Chain

	if cfg.MinLength > 0 {
		filters = append(filters, MinLength(cfg.MinLength))
	}

	if len(cfg.Include) > 0 {
		filters = append(filters, Include(cfg.Include))
	}

	if len(cfg.Exclude) > 0 {
		filters = append(filters, Exclude(cfg.Exclude))
	}

	return filters
}

// MinLength rejects words with fewer than n runes.
func MinLength(n int) WordFilter {
	return func(word string) bool {
		return utf8.RuneCountInString(word) >= n
	}
}

// Include keeps only words matching at least one glob pattern.
func Include(patterns []string) WordFilter {
	return func(word string) bool {
		return matchAny(patterns, word)
	}
}

// Exclude drops words matching any glob pattern.
func Exclude(patterns []string) WordFilter {
	return func(word string) bool {
		return !matchAny(patterns, word)
	}
}

func matchAny(patterns []string, word string) bool {
	for _, pattern := range patterns {
		if matched, err := path.Match(pattern, word); err == nil && matched {
			return true
		}
	}
	return false
}
