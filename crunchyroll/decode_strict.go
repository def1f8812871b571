//go:build crunchy_strict

package crunchyroll

// StrictDecoding reports whether unknown response fields are rejected.
const StrictDecoding = true
