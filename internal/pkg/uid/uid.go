// Package uid provides identifier generators behind small interfaces so
// callers can swap deterministic generators in tests.
package uid

// NumberID generates numeric identifiers, used as primary keys.
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers, used for correlation ids and
// object-storage keys.
type StringID interface {
	Generate() string
}
