package crunchyroll

import (
	"reflect"
	"slices"
)

// Hydratable is implemented by every type Request can return. After a
// successful decode the executor that issued the call is handed to the result,
// which forwards it to every Hydratable value it owns so nested objects can
// make their own authenticated follow-up calls.
//
// SetExecutor must be idempotent and must tolerate a nil receiver.
type Hydratable interface {
	SetExecutor(e *Executor)
	Executor() *Executor
}

// Available is implemented by entities whose accessibility depends on the
// caller's entitlement. It is evaluated on every call.
type Available interface {
	Hydratable
	Available() bool
}

// IDConstructible is implemented by entities that can be fetched by id alone.
type IDConstructible interface {
	Hydratable
	// EndpointForID returns the path, relative to the API base url, of the
	// entity with the given id inside bucket.
	EndpointForID(bucket, id string) string
}

// NoExecutor can be embedded by leaf types that never make follow-up calls.
type NoExecutor struct{}

// SetExecutor is a no-op
func (NoExecutor) SetExecutor(*Executor) {}

// Executor always returns nil
func (NoExecutor) Executor() *Executor { return nil }

// Empty is the result of calls whose response body is irrelevant.
type Empty struct {
	NoExecutor
}

// UnmarshalJSON accepts any body
func (*Empty) UnmarshalJSON([]byte) error { return nil }

// premiumOf reports the entitlement of e. Entities that were never hydrated
// are treated as non-premium.
func premiumOf(e *Executor) bool {
	return e != nil && e.Premium()
}

// dropNil removes nil pointers from items. A null element in an items list
// never reaches the caller.
func dropNil[T any](items []T) []T {
	return slices.DeleteFunc(items, func(item T) bool {
		v := reflect.ValueOf(item)
		return !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil())
	})
}
