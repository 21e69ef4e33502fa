package configuration

import "go.uber.org/zap"

// NewLogger builds the process-wide structured logger.
func NewLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
