// Package logger holds the process-wide structured logger.
package logger

import "go.uber.org/zap"

var log = zap.NewNop()

// Init replaces the process logger. prod selects zap's JSON production
// config; otherwise the human-readable development config is used.
func Init(prod bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if prod {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L returns the process logger. Before Init it is a nop, so library callers
// that do not configure logging pay nothing.
func L() *zap.Logger {
	return log
}
