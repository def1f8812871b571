//go:build !crunchy_strict

package crunchyroll

// StrictDecoding reports whether unknown response fields are rejected.
// Build with -tags crunchy_strict to check schemas against the live service.
const StrictDecoding = false
