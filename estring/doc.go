// Package estring provides a Unicode string value backed by a wide (UTF-16
// code unit) representation, with explicit, checked conversions to and from
// UTF-8 and the common MySQL character sets.
//
// Conversions are strict by default: malformed UTF-8 input and unpaired
// surrogates in the wide form report the binding's uniform error kind instead
// of being silently replaced. Callers that want replacement-character
// behavior opt into the Lossy policy explicitly.
package estring
