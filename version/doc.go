// Package version exposes the build version of the binding, embedded at
// build time via -ldflags or recovered from module build info.
package version
