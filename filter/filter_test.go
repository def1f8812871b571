package filter

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/s0up4200/crunchy/crunchyroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries() *crunchyroll.Collection {
	return &crunchyroll.Collection{
		ID:          "GY8VEQ95Y",
		Type:        crunchyroll.MediaTypeSeries,
		Title:       "DARLING in the FRANXX",
		SlugTitle:   "darling-in-the-franxx",
		Description: "In the distant future, humanity has established a new city.",
		SeriesMetadata: &crunchyroll.SeriesMetadata{
			EpisodeCount:     24,
			SeasonCount:      1,
			SeriesLaunchYear: 2018,
			IsSubbed:         true,
			IsDubbed:         true,
			AudioLocales:     []crunchyroll.Locale{crunchyroll.LocaleJaJP, crunchyroll.LocaleEnUS},
			SubtitleLocales:  []crunchyroll.Locale{crunchyroll.LocaleEnUS, crunchyroll.LocaleDeDE},
		},
		SearchMetadata: &crunchyroll.SearchMetadata{Score: 52.4},
	}
}

func testMovieListing() *crunchyroll.Collection {
	return &crunchyroll.Collection{
		ID:    "G6MG10X86",
		Type:  crunchyroll.MediaTypeMovieListing,
		Title: "Jujutsu Kaisen 0",
		MovieListingMetadata: &crunchyroll.MovieListingMetadata{
			MovieReleaseYear: 2021,
			IsPremiumOnly:    true,
			IsSubbed:         true,
			SubtitleLocales:  []crunchyroll.Locale{crunchyroll.LocaleEnUS},
		},
	}
}

func testEpisode() *crunchyroll.Collection {
	return &crunchyroll.Collection{
		ID:    "GRDKJZ81Y",
		Type:  crunchyroll.MediaTypeEpisode,
		Title: "Alone and Lonesome",
		EpisodeMetadata: &crunchyroll.EpisodeMetadata{
			SeriesTitle:   "DARLING in the FRANXX",
			EpisodeNumber: 1,
			AudioLocale:   crunchyroll.LocaleJaJP,
		},
	}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{name: "valid expression", expression: `isType("series")`},
		{name: "complex expression", expression: `isType("series") and Year > 2015 and hasAudio("ja-JP")`},
		{name: "membership", expression: `"de-DE" in SubtitleLocales`},
		{name: "empty expression", expression: "   ", wantErr: true, errContains: "empty expression"},
		{name: "invalid syntax", expression: `contains(Title, "unclosed`, wantErr: true},
		{name: "unknown name", expression: `Rating > 5`, wantErr: true},
		{name: "not a boolean", expression: `Year + 1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)

			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.expression), filter.Expression())
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	series := testSeries()
	movie := testMovieListing()
	episode := testEpisode()

	tests := []struct {
		name       string
		expression string
		item       *crunchyroll.Collection
		expected   bool
	}{
		{name: "type helper", expression: `isType("SERIES")`, item: series, expected: true},
		{name: "type field", expression: `Type == "movie_listing"`, item: movie, expected: true},
		{name: "year comparison", expression: `Year >= 2018`, item: series, expected: true},
		{name: "movie year", expression: `Year == 2021`, item: movie, expected: true},
		{name: "episode count", expression: `EpisodeCount > 12 and SeasonCount == 1`, item: series, expected: true},
		{name: "audio locale", expression: `hasAudio("ja-jp")`, item: series, expected: true},
		{name: "missing audio locale", expression: `hasAudio("de-DE")`, item: series, expected: false},
		{name: "episode audio locale", expression: `hasAudio("ja-JP")`, item: episode, expected: true},
		{name: "subtitle locale", expression: `hasSubtitle("de-DE")`, item: series, expected: true},
		{name: "no subtitles", expression: `len(SubtitleLocales) == 0`, item: episode, expected: true},
		{name: "title contains", expression: `contains(Title, "franxx")`, item: series, expected: true},
		{name: "slug prefix", expression: `startsWith(Slug, "darling")`, item: series, expected: true},
		{name: "premium only", expression: `IsPremiumOnly`, item: movie, expected: true},
		{name: "not available without premium", expression: `not Available`, item: movie, expected: true},
		{name: "available series", expression: `Available`, item: series, expected: true},
		{name: "score", expression: `Score > 50.0`, item: series, expected: true},
		{name: "no score", expression: `Score == 0.0`, item: movie, expected: true},
		{name: "dubbed and subbed", expression: `IsDubbed and IsSubbed`, item: series, expected: true},
		{name: "struct access", expression: `Collection.EpisodeMetadata.SeriesTitle == "DARLING in the FRANXX"`, item: episode, expected: true},
		{name: "years since", expression: `yearsSince(Year) > 5`, item: series, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, filter.Evaluate(tt.item), "expression %q", tt.expression)
		})
	}
}

func TestFilterMatch_RuntimeError(t *testing.T) {
	filter, err := CompileFilter(`int(Title) > 0`)
	require.NoError(t, err)

	item := testSeries()
	ok, err := filter.Match(item)
	require.Error(t, err)
	assert.False(t, ok)
	assert.False(t, filter.Evaluate(item))

	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, "GY8VEQ95Y", evalErr.ItemID)
	assert.Equal(t, `int(Title) > 0`, evalErr.Expression)
}

func TestFilterMatch_NilItem(t *testing.T) {
	filter, err := CompileFilter(`Year > 0`)
	require.NoError(t, err)

	ok, err := filter.Match(nil)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isLong": func(episodes int) bool { return episodes >= 24 },
	}))

	filter, err := compiler.Compile(`isLong(EpisodeCount)`)
	require.NoError(t, err)

	assert.True(t, filter.Evaluate(testSeries()))
	assert.False(t, filter.Evaluate(testMovieListing()))

	_, err = NewExprCompiler().Compile(`isLong(EpisodeCount)`)
	assert.Error(t, err)
}

func TestCompilerCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`Year > 2000`)
	require.NoError(t, err)
	again, err := compiler.Compile(`  Year > 2000  `)
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 1, compiler.Size())

	for i := range 3 {
		_, err := compiler.Compile(fmt.Sprintf("Year > %d", i))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, compiler.Size())

	compiler.Clear()
	assert.Zero(t, compiler.Size())

	uncached := NewExprCompiler()
	_, err = uncached.Compile(`Year > 2000`)
	require.NoError(t, err)
	assert.Zero(t, uncached.Size())
}
