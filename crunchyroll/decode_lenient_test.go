//go:build !crunchy_strict

package crunchyroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLenientDecoding(t *testing.T) {
	require.False(t, StrictDecoding)

	var series Series
	err := decodeJSON([]byte(`{"id":"GY8VEQ95Y","brand_new_field":{"nested":[1,2]}}`), &series)
	require.NoError(t, err)
	assert.Equal(t, "GY8VEQ95Y", series.ID)
	assert.Zero(t, series.EpisodeCount)

	var results QueryResults
	err = decodeJSON([]byte(`{"items":[{"type":"series","total":0,"items":[{"id":"A","extra":1}],"extra":true}],"extra":"x"}`), &results)
	require.NoError(t, err)
	require.NotNil(t, results.Series)
	assert.Equal(t, "A", results.Series.Items[0].ID)
}
