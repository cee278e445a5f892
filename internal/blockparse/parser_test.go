// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package blockparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FencedWithLanguageTag(t *testing.T) {
	text := "Here is the fix:\n\n" +
		"src/config.py\n" +
		"```python\n" +
		"<<<<<<< SEARCH\n" +
		"timeout = 30\n" +
		"=======\n" +
		"timeout = 60\n" +
		">>>>>>> REPLACE\n" +
		"```\n\n" +
		"That should do it.\n"

	blocks := Parse(text)
	require.Len(t, blocks, 1)
	assert.Equal(t, "src/config.py", blocks[0].FilePath)
	assert.Equal(t, "timeout = 30", blocks[0].SearchText)
	assert.Equal(t, "timeout = 60", blocks[0].ReplaceText)
}

func TestParse_FencedWithoutLanguageTag(t *testing.T) {
	text := "src/config.py\n" +
		"```\n" +
		"<<<<<<< SEARCH\n" +
		"a = 1\n" +
		"=======\n" +
		"a = 2\n" +
		">>>>>>> REPLACE\n" +
		"```\n"

	blocks := Parse(text)
	require.Len(t, blocks, 1)
	assert.Equal(t, "a = 1", blocks[0].SearchText)
}

func TestParse_BareMarkers(t *testing.T) {
	text := "src/config.py\n" +
		"<<<<<<< SEARCH\n" +
		"a = 1\n" +
		"=======\n" +
		"a = 2\n" +
		">>>>>>> REPLACE\n"

	blocks := Parse(text)
	require.Len(t, blocks, 1)
	assert.Equal(t, "src/config.py", blocks[0].FilePath)
	assert.Equal(t, "a = 1", blocks[0].SearchText)
	assert.Equal(t, "a = 2", blocks[0].ReplaceText)
}

// Two independently fenced blocks come back as exactly two blocks in
// source order, with surrounding whitespace trimmed off the paths.
func TestParse_OrderPreserved(t *testing.T) {
	text := "First:\n\n" +
		"  src/first.py  \n" +
		"```python\n" +
		"<<<<<<< SEARCH\n" +
		"one\n" +
		"=======\n" +
		"ONE\n" +
		">>>>>>> REPLACE\n" +
		"```\n\n" +
		"Second:\n\n" +
		"src/second.py\n" +
		"```python\n" +
		"<<<<<<< SEARCH\n" +
		"two\n" +
		"=======\n" +
		"TWO\n" +
		">>>>>>> REPLACE\n" +
		"```\n"

	blocks := Parse(text)
	require.Len(t, blocks, 2)
	assert.Equal(t, "src/first.py", blocks[0].FilePath)
	assert.Equal(t, "src/second.py", blocks[1].FilePath)
}

// Once the fenced pattern has matched, the bare pattern is never also
// consulted, so the fenced block's inner markers cannot double-count.
func TestParse_TiersDoNotMix(t *testing.T) {
	text := "src/a.py\n" +
		"```python\n" +
		"<<<<<<< SEARCH\n" +
		"x\n" +
		"=======\n" +
		"y\n" +
		">>>>>>> REPLACE\n" +
		"```\n"

	blocks := Parse(text)
	assert.Len(t, blocks, 1)
}

func TestParse_EmptySearchText(t *testing.T) {
	text := "notes.txt\n" +
		"<<<<<<< SEARCH\n" +
		"=======\n" +
		"appended line\n" +
		">>>>>>> REPLACE\n"

	blocks := Parse(text)
	require.Len(t, blocks, 1)
	assert.Equal(t, "", blocks[0].SearchText)
	assert.Equal(t, "appended line", blocks[0].ReplaceText)
}

func TestParse_DiscardsCommentPaths(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "hash comment", header: "# just a comment"},
		{name: "slash comment", header: "// also a comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := tt.header + "\n" +
				"<<<<<<< SEARCH\n" +
				"a\n" +
				"=======\n" +
				"b\n" +
				">>>>>>> REPLACE\n"

			assert.Empty(t, Parse(text))
		})
	}
}

func TestParse_MalformedBlocksOmitted(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "missing replace marker",
			text: "src/a.py\n<<<<<<< SEARCH\nx\n=======\ny\n",
		},
		{
			name: "missing divider",
			text: "src/a.py\n<<<<<<< SEARCH\nx\n>>>>>>> REPLACE\n",
		},
		{
			name: "no blocks at all",
			text: "just some prose about code\n",
		},
		{
			name: "empty input",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Parse(tt.text))
		})
	}
}

func TestParse_KeepsTrailingSpacesStripsNewlines(t *testing.T) {
	text := "src/a.py\n" +
		"<<<<<<< SEARCH\n" +
		"line with trailing spaces   \n" +
		"\n" +
		"=======\n" +
		"replacement\n" +
		">>>>>>> REPLACE\n"

	blocks := Parse(text)
	require.Len(t, blocks, 1)
	assert.Equal(t, "line with trailing spaces   ", blocks[0].SearchText)
}
