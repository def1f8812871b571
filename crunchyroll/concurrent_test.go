package crunchyroll

import (
	"context"
	"errors"
	"net/http"
	"path"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromIDs_PreservesOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		id := path.Base(r.URL.Path)
		// reverse the completion order
		if id == "A" {
			time.Sleep(20 * time.Millisecond)
		}
		w.Write([]byte(`{"id":"` + id + `"}`))
	})

	ids := []string{"A", "B", "C", "D"}
	series, err := client.SeriesFromIDs(context.Background(), ids, 0)
	require.NoError(t, err)
	require.Len(t, series, len(ids))

	for i, s := range series {
		assert.Equal(t, ids[i], s.ID)
		assert.Same(t, client.Executor(), s.Executor())
	}
}

func TestFromIDs_Limit(t *testing.T) {
	var inFlight, peak atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		w.Write([]byte(`{"id":"` + path.Base(r.URL.Path) + `"}`))
	})

	listings, err := client.MovieListingsFromIDs(context.Background(), []string{"1", "2", "3", "4", "5", "6"}, 2)
	require.NoError(t, err)
	assert.Len(t, listings, 6)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestFromIDs_Error(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if path.Base(r.URL.Path) == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"id":"ok"}`))
	})

	series, err := client.SeriesFromIDs(context.Background(), []string{"A", "missing", "B"}, 1)
	require.Error(t, err)
	assert.Nil(t, series)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.True(t, decodeErr.IsNotFound())
}

func TestFromIDs_Empty(t *testing.T) {
	series, err := FromIDs[Series](context.Background(), &Executor{}, nil, 4)
	require.NoError(t, err)
	assert.NotNil(t, series)
	assert.Empty(t, series)
}
