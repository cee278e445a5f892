// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestMatch(t *testing.T) {
	tests := []struct {
		name     string
		original string
		search   string
		want     string
	}{
		{
			name:     "single line near match",
			original: "alpha\nbeta\ngamma\n",
			search:   "betta\n",
			want:     "closest match at lines 2-2, similarity 0.80",
		},
		{
			name:     "multi line window",
			original: "one\nbXta\ngamma\nfour\n",
			search:   "beta\ngamma\n",
			want:     "closest match at lines 2-3, similarity 0.90",
		},
		{
			name:     "exact region scores full similarity",
			original: "alpha\nbeta\ngamma\n",
			search:   "beta\n",
			want:     "closest match at lines 2-2, similarity 1.00",
		},
		{
			name:     "empty search",
			original: "alpha\n",
			search:   "",
			want:     "",
		},
		{
			name:     "empty original",
			original: "",
			search:   "beta\n",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClosestMatch(tt.original, tt.search))
		})
	}
}
