package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/crunchy/crunchyroll"
)

func TestIDsFromArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		kind    crunchyroll.URLKind
		want    []string
		wantErr string
	}{
		{
			name: "plain ids",
			args: []string{"GY8VEQ95Y", "GRDQPM1ZY"},
			kind: crunchyroll.URLSeries,
			want: []string{"GY8VEQ95Y", "GRDQPM1ZY"},
		},
		{
			name: "mixed ids and urls",
			args: []string{"https://www.crunchyroll.com/de/series/GY8VEQ95Y/darling-in-the-franxx", "GRDQPM1ZY"},
			kind: crunchyroll.URLSeries,
			want: []string{"GY8VEQ95Y", "GRDQPM1ZY"},
		},
		{
			name: "movie listing url",
			args: []string{"https://www.crunchyroll.com/movie_listing/G6497Z43Y"},
			kind: crunchyroll.URLMovieListing,
			want: []string{"G6497Z43Y"},
		},
		{
			name:    "wrong kind",
			args:    []string{"https://www.crunchyroll.com/watch/GRDQPM1ZY/partners"},
			kind:    crunchyroll.URLSeries,
			wantErr: "is a episode_or_movie url, expected series",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idsFromArgs(tt.args, tt.kind)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUniqueCollections(t *testing.T) {
	a := &crunchyroll.Collection{ID: "A"}
	b := &crunchyroll.Collection{ID: "B"}

	got := uniqueCollections([]*crunchyroll.Collection{a, b, a, b})

	require.Len(t, got, 2)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])
}
