package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/crunchy/crunchyroll"
)

func TestFormatCollections(t *testing.T) {
	f := NewConsoleFormatter()

	items := []*crunchyroll.Collection{
		{
			ID:    "GY8VEQ95Y",
			Title: "Darling in the Franxx",
			Type:  crunchyroll.MediaTypeSeries,
			SeriesMetadata: &crunchyroll.SeriesMetadata{
				SeriesLaunchYear: 2018,
				EpisodeCount:     24,
				SeasonCount:      1,
				AudioLocales:     []crunchyroll.Locale{crunchyroll.LocaleJaJP, crunchyroll.LocaleEnUS},
			},
		},
		{
			ID:    "G2XU0DP5Q",
			Title: "Partners",
			Type:  crunchyroll.MediaTypeEpisode,
			EpisodeMetadata: &crunchyroll.EpisodeMetadata{
				SeriesTitle:   "Darling in the Franxx",
				SeasonNumber:  1,
				EpisodeNumber: 3,
				IsPremiumOnly: true,
			},
		},
	}

	out := f.FormatCollections("Matches", items)

	assert.Contains(t, out, "Matches (2):")
	assert.Contains(t, out, "├── Darling in the Franxx [series] GY8VEQ95Y\n")
	assert.Contains(t, out, "2018 | 24 episodes, 1 seasons")
	assert.Contains(t, out, "Audio: ja-JP, en-US")
	// premium only episode without a premium session
	assert.Contains(t, out, "╰── Partners [episode] G2XU0DP5Q [PREMIUM]\n")
	assert.Contains(t, out, "Darling in the Franxx S01E03")
}

func TestFormatCollections_Empty(t *testing.T) {
	out := NewConsoleFormatter().FormatCollections("Series", nil)
	assert.Contains(t, out, "Series (0):")
	assert.Contains(t, out, "none")
}

func TestFormatQueryResults(t *testing.T) {
	f := NewConsoleFormatter()

	t.Run("no slots", func(t *testing.T) {
		assert.Equal(t, "No results found\n", f.FormatQueryResults(&crunchyroll.QueryResults{}))
	})

	t.Run("remaining count", func(t *testing.T) {
		results := &crunchyroll.QueryResults{
			Series: &crunchyroll.BulkResult[*crunchyroll.Collection]{
				Total: 5,
				Items: []*crunchyroll.Collection{{ID: "A", Title: "One", Type: crunchyroll.MediaTypeSeries}},
			},
		}

		out := f.FormatQueryResults(results)
		assert.Contains(t, out, "Series (1):")
		assert.Contains(t, out, "... 4 more")
		assert.NotContains(t, out, "Top results")
	})
}

func TestFormatSeries(t *testing.T) {
	series := []*crunchyroll.Series{
		{
			ID:              "GY8VEQ95Y",
			Title:           "Darling in the Franxx",
			EpisodeCount:    24,
			SeasonCount:     1,
			IsSubbed:        true,
			IsDubbed:        true,
			SubtitleLocales: []crunchyroll.Locale{crunchyroll.LocaleDeDE},
			Images: crunchyroll.SeriesImages{
				PosterTall: [][]crunchyroll.Image{{
					{Source: "small.jpg", Width: 60, Height: 90},
					{Source: "large.jpg", Width: 480, Height: 720},
				}},
			},
		},
	}

	out := NewConsoleFormatter().FormatSeries(series)

	assert.Contains(t, out, "╰── Darling in the Franxx (unknown year) GY8VEQ95Y\n")
	assert.Contains(t, out, "Subbed | Dubbed")
	assert.Contains(t, out, "Subtitles: de-DE")
	assert.Contains(t, out, "Poster: large.jpg")
}

func TestFormatMovieListings(t *testing.T) {
	listings := []*crunchyroll.MovieListing{
		{ID: "G6497Z43Y", Title: "Movie", MovieReleaseYear: 2021, ContentProvider: "Aniplex", IsPremiumOnly: true},
		{ID: "G25FVD45Q", Title: "Other", MovieReleaseYear: 2019},
	}

	out := NewConsoleFormatter().FormatMovieListings(listings)

	assert.Contains(t, out, "Movie listings (2):")
	assert.Contains(t, out, "├── Movie (2021) G6497Z43Y [PREMIUM]\n")
	assert.Contains(t, out, "Provider: Aniplex")
	assert.Contains(t, out, "╰── Other (2019) G25FVD45Q\n")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]string{"id": "GY8VEQ95Y"}))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "GY8VEQ95Y", decoded["id"])
	assert.Contains(t, buf.String(), "\n  \"id\"")
}
