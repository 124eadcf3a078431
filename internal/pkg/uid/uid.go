// Package uid provides small identifier generators behind two interfaces:
// NumberID for int64 identifiers and StringID for string identifiers.
package uid

// NumberID generates int64 identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}
