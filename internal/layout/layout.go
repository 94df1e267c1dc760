// Package layout holds the built-in keyboard layouts.
// Each layout lists the characters of the three main alphabetic rows,
// scanned left to right and top to bottom, so the same index always
// names the same physical key across layouts.
package layout

import (
	"fmt"
	"sort"

	"layoutsyn/internal/errors"
)

// KeyCount is the number of physical keys every built-in layout covers:
// ten keys on the top row, ten on the home row and eleven on the bottom row.
const KeyCount = 31

var rowLengths = [...]int{10, 10, 11}

// Layout is a named, immutable assignment of characters to key positions.
type Layout struct {
	name string
	keys []rune
}

// Name returns the registry name of the layout.
func (l Layout) Name() string {
	return l.name
}

// Keys returns a copy of the layout's key sequence.
func (l Layout) Keys() []rune {
	keys := make([]rune, len(l.keys))
	copy(keys, l.keys)
	return keys
}

// Len returns the number of key positions in the layout.
func (l Layout) Len() int {
	return len(l.keys)
}

// Rows splits the key sequence into the physical keyboard rows.
// Keys beyond the known row lengths are appended to the last row.
func (l Layout) Rows() [][]rune {
	var rows [][]rune
	start := 0
	for i, n := range rowLengths {
		if start >= len(l.keys) {
			break
		}
		end := start + n
		if i == len(rowLengths)-1 || end > len(l.keys) {
			end = len(l.keys)
		}
		row := make([]rune, end-start)
		copy(row, l.keys[start:end])
		rows = append(rows, row)
		start = end
	}
	return rows
}

var builtin = map[string]Layout{
	"dvorak": {
		name: "dvorak",
		keys: []rune{
			'\'', ',', '.', 'p', 'y', 'f', 'g', 'c', 'r', 'l',
			'a', 'o', 'e', 'u', 'i', 'd', 'h', 't', 'n', 's',
			'-', ';', 'q', 'j', 'k', 'x', 'b', 'm', 'w', 'v', 'z',
		},
	},
	"qwerty": {
		name: "qwerty",
		keys: []rune{
			'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p',
			'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';',
			'\'', 'z', 'x', 'c', 'v', 'b', 'n', 'm', ',', '.', '/',
		},
	},
	"colemak": {
		name: "colemak",
		keys: []rune{
			'q', 'w', 'f', 'p', 'g', 'j', 'l', 'u', 'y', ';',
			'a', 'r', 's', 't', 'd', 'h', 'n', 'e', 'i', 'o',
			'\'', 'z', 'x', 'c', 'v', 'b', 'k', 'm', ',', '.', '/',
		},
	},
	"workman": {
		name: "workman",
		keys: []rune{
			'q', 'd', 'r', 'w', 'b', 'j', 'f', 'u', 'p', ';',
			'a', 's', 'h', 't', 'g', 'y', 'n', 'e', 'o', 'i',
			'\'', 'z', 'x', 'm', 'c', 'v', 'k', 'l', ',', '.', '/',
		},
	},
}

// Get returns the built-in layout registered under name.
func Get(name string) (Layout, error) {
	l, ok := builtin[name]
	if !ok {
		return Layout{}, errors.NewLayoutError(fmt.Sprintf("unknown layout %q (known: %v)", name, Names()), nil)
	}
	return l, nil
}

// Has reports whether name is a built-in layout.
func Has(name string) bool {
	_, ok := builtin[name]
	return ok
}

// Names returns the names of all built-in layouts in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every built-in layout, sorted by name.
func All() []Layout {
	names := Names()
	layouts := make([]Layout, 0, len(names))
	for _, name := range names {
		layouts = append(layouts, builtin[name])
	}
	return layouts
}
