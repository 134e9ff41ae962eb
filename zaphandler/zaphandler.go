// Package zaphandler routes deprecation messages into a zap logger.
//
//	f := deprecate.New(cfg, deprecate.WithHandler(zaphandler.Handler(logger)))
//
// A registered handler takes priority over every facility switch except
// SuppressDeprecation, so throw-mode and trace-mode have no effect while it
// is installed.
package zaphandler

import (
	"go.uber.org/zap"

	"github.com/sghaida/deprecate/deprecate"
)

// Message is the zap log message; the deprecation text goes in FieldKey.
const (
	Message  = "deprecated API used"
	FieldKey = "deprecation"
)

// Handler logs each message at warn level on logger.
func Handler(logger *zap.Logger) deprecate.Handler {
	return func(message string) {
		logger.Warn(Message, zap.String(FieldKey, message))
	}
}

// SugaredHandler is Handler for a *zap.SugaredLogger.
func SugaredHandler(logger *zap.SugaredLogger) deprecate.Handler {
	return func(message string) {
		logger.Warnw(Message, FieldKey, message)
	}
}
