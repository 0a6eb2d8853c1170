// Package guid provides the fixed-size printable identifier used for
// documents: an opaque 32-byte buffer, comparable byte-wise, with fresh
// values generated from random UUIDs.
package guid
