package logger

import "go.uber.org/zap"

// New zap logger, development flavoured when debug is set
func New(debug bool) *zap.Logger {
	if debug {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()

	return logger
}
