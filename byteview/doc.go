// Package byteview provides cheap, copyable descriptors of byte regions.
//
// It includes View, a non-owning window over an existing slice, and Buffer,
// an owning immutable variant, both usable through the Source interface.
package byteview
