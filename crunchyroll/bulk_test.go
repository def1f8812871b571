package crunchyroll

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkResult_Decode(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantItems int
		wantTotal uint32
	}{
		{name: "empty page", payload: `{"items":[],"total":0}`, wantItems: 0, wantTotal: 0},
		{name: "missing items", payload: `{"total":0}`, wantItems: 0, wantTotal: 0},
		{name: "null items", payload: `{"items":null,"total":3}`, wantItems: 0, wantTotal: 3},
		{name: "partial page", payload: `{"items":[{"id":"A"},{"id":"B"}],"total":5}`, wantItems: 2, wantTotal: 5},
		{name: "null element", payload: `{"items":[{"id":"A"},null],"total":2}`, wantItems: 1, wantTotal: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result BulkResult[*Series]
			require.NoError(t, decodeJSON([]byte(tt.payload), &result))

			require.NotNil(t, result.Items)
			assert.Len(t, result.Items, tt.wantItems)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantTotal-uint32(tt.wantItems), result.Remaining())
		})
	}
}

func TestBulkResult_SetExecutor(t *testing.T) {
	e := &Executor{config: Config{Premium: true}}
	result := &BulkResult[*Series]{
		Items: []*Series{{ID: "A"}, nil, {ID: "B"}},
		Total: 3,
	}

	assert.Nil(t, result.Executor())

	result.SetExecutor(e)
	result.SetExecutor(e)

	assert.Same(t, e, result.Items[0].Executor())
	assert.Nil(t, result.Items[1])
	assert.Same(t, e, result.Items[2].Executor())
	assert.Same(t, e, result.Executor())
	assert.Equal(t, uint32(3), result.Total)
}

func TestBulkResult_NilReceiver(t *testing.T) {
	var result *BulkResult[*Series]

	assert.NotPanics(t, func() { result.SetExecutor(&Executor{}) })
	assert.Nil(t, result.Executor())
	assert.Zero(t, result.Remaining())
}

func TestBulkResult_ThroughRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":"GY8VEQ95Y"},{"id":"GRDV0019R"}],"total":120}`))
	})
	e := client.Executor()

	req, err := e.NewRequest(context.Background(), http.MethodGet, e.Config().APIURL+"/cms/v2/list", e.MediaQuery())
	require.NoError(t, err)

	page, err := Request[BulkResult[*Series]](e, req)
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, uint32(120), page.Total)
	assert.Equal(t, uint32(118), page.Remaining())
	for _, s := range page.Items {
		assert.Same(t, e, s.Executor())
	}
}
