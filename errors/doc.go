// Package errors provides the single error kind surfaced by the binding's
// public API, plus the boundary helpers that normalize any foreign failure
// into that kind.
//
// The kind carries a message only, no structured codes. That is a known
// limitation of the API contract, kept deliberately: callers inspect the
// message text and nothing else.
package errors
