// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package indent implements a reversible relative-indentation encoding.
// Two blocks of code that differ only by a constant indentation shift
// become much more alike once leading whitespace is delta-encoded, which
// lets exact and diff-based matchers see through re-indentation.
package indent

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// preferredMarker is the dedent glyph tried first. It is rare enough in
// real source text that the codepoint scan below almost never runs.
const preferredMarker = '←'

var (
	// ErrMarkerExhausted means no unused codepoint could be found for the
	// corpus being normalized. Should never happen with finite input.
	ErrMarkerExhausted = errors.New("no unused marker codepoint available")

	// ErrCorrupt means a relative-encoded text could not be decoded, or
	// the marker leaked into decoded output. The attempt that produced
	// the text should be treated as failed.
	ErrCorrupt = errors.New("corrupt relative-indent encoding")
)

// RelativeIndenter converts between absolute and relative indentation.
// The marker is chosen per corpus at construction time; instances share
// no state, so unrelated normalizations never interfere.
type RelativeIndenter struct {
	marker rune
}

// NewRelativeIndenter picks a marker character absent from every given
// text and returns an indenter bound to it. The preferred glyph is used
// when free; otherwise codepoints are scanned downward from the top of
// the code space until an unused one is found.
func NewRelativeIndenter(texts ...string) (*RelativeIndenter, error) {
	seen := make(map[rune]bool)
	for _, t := range texts {
		for _, r := range t {
			seen[r] = true
		}
	}

	if !seen[preferredMarker] {
		return &RelativeIndenter{marker: preferredMarker}, nil
	}

	for cp := rune(unicode.MaxRune); cp > 0; cp-- {
		if !utf8.ValidRune(cp) {
			continue
		}
		if !seen[cp] {
			return &RelativeIndenter{marker: cp}, nil
		}
	}

	return nil, ErrMarkerExhausted
}

// Marker returns the marker rune chosen for this corpus.
func (ri *RelativeIndenter) Marker() rune {
	return ri.marker
}

// MakeRelative delta-encodes leading whitespace. Each input line becomes
// two output lines: an indent token followed by the line's content with
// its indent stripped. When a line is indented deeper than the previous
// one by N characters, the token is the last N characters of the indent,
// verbatim; when shallower by N, the token is the marker repeated N
// times; when equal, the token is empty.
func (ri *RelativeIndenter) MakeRelative(text string) (string, error) {
	if strings.ContainsRune(text, ri.marker) {
		return "", fmt.Errorf("%w: input already contains marker %q", ErrCorrupt, ri.marker)
	}

	var b strings.Builder
	prevIndent := ""
	for _, line := range splitLines(text) {
		indent, content := splitIndent(line)
		switch {
		case len(indent) > len(prevIndent):
			n := len(indent) - len(prevIndent)
			b.WriteString(indent[len(indent)-n:])
		case len(indent) < len(prevIndent):
			b.WriteString(strings.Repeat(string(ri.marker), len(prevIndent)-len(indent)))
		}
		b.WriteByte('\n')
		b.WriteString(content)
		b.WriteByte('\n')
		prevIndent = indent
	}
	return b.String(), nil
}

// MakeAbsolute is the inverse of MakeRelative. It walks token/content
// pairs maintaining a running indent: a marker token trims that many
// characters off the end of the running indent, any other token is
// appended to it literally. Blank content lines are never indented.
// Returns ErrCorrupt when the pairing is broken, a dedent underflows,
// or the marker leaks into the output.
func (ri *RelativeIndenter) MakeAbsolute(text string) (string, error) {
	lines := splitLines(text)
	if len(lines)%2 != 0 {
		return "", fmt.Errorf("%w: odd number of encoded lines", ErrCorrupt)
	}

	var b strings.Builder
	indent := ""
	for i := 0; i < len(lines); i += 2 {
		token, content := lines[i], lines[i+1]

		if strings.HasPrefix(token, string(ri.marker)) {
			n := utf8.RuneCountInString(token)
			if strings.Count(token, string(ri.marker)) != n {
				return "", fmt.Errorf("%w: mixed dedent token", ErrCorrupt)
			}
			if n > len(indent) {
				return "", fmt.Errorf("%w: dedent below column zero", ErrCorrupt)
			}
			indent = indent[:len(indent)-n]
		} else {
			indent += token
		}

		if content == "" {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(indent)
		b.WriteString(content)
		b.WriteByte('\n')
	}

	out := b.String()
	if strings.ContainsRune(out, ri.marker) {
		return "", fmt.Errorf("%w: marker leaked into output", ErrCorrupt)
	}
	return out, nil
}

// splitIndent separates a line into its leading whitespace and content.
// A line that is entirely whitespace is treated as unindented content so
// that it survives a round trip unchanged.
func splitIndent(line string) (indent, content string) {
	if strings.TrimSpace(line) == "" {
		return "", line
	}
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i], line[i:]
}

// splitLines splits on newlines, dropping the empty element a trailing
// newline would otherwise produce.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
