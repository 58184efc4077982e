// Package logger provides structured logging for the client kit using
// zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. The capability set is
// debug, info, log, warn, and error — Log emits zerolog's unleveled event.
//
// # Usage
//
//	log := logger.NewFromEnv("prefetch")
//	log.Info("window drained", logger.Fields("pending", 0))
package logger
