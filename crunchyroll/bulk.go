package crunchyroll

// BulkResult holds a page of items together with the total number of items
// the server has. len(Items) may be smaller than Total.
type BulkResult[T Hydratable] struct {
	Items []T    `json:"items"`
	Total uint32 `json:"total"`
}

// UnmarshalJSON decodes the page. A missing or null items list decodes to an
// empty slice and null items are dropped.
func (b *BulkResult[T]) UnmarshalJSON(data []byte) error {
	var raw bulkResultJSON[T]
	if err := decodeJSON(data, &raw); err != nil {
		return err
	}
	if raw.Items == nil {
		raw.Items = []T{}
	}
	raw.Items = dropNil(raw.Items)
	*b = BulkResult[T](raw)
	return nil
}

// bulkResultJSON has the layout of BulkResult without its methods.
type bulkResultJSON[T Hydratable] struct {
	Items []T    `json:"items"`
	Total uint32 `json:"total"`
}

// SetExecutor hydrates every item
func (b *BulkResult[T]) SetExecutor(e *Executor) {
	if b == nil {
		return
	}
	for _, item := range b.Items {
		item.SetExecutor(e)
	}
}

// Executor returns the executor of the first item. A bulk result does not
// keep one of its own.
func (b *BulkResult[T]) Executor() *Executor {
	if b == nil || len(b.Items) == 0 {
		return nil
	}
	return b.Items[0].Executor()
}

// Remaining returns how many items the server has beyond this page.
func (b *BulkResult[T]) Remaining() uint32 {
	if b == nil {
		return 0
	}
	if n := uint32(len(b.Items)); n < b.Total {
		return b.Total - n
	}
	return 0
}
