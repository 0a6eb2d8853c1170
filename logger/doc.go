// Package logger provides structured logging for the binding using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. A library embedder
// typically builds one logger and hands its zerolog form to the error
// boundary:
//
//	log := logger.NewDefault("dbkit")
//	errors.SetLogger(log.GetLogger())
package logger
