package utils

import (
	"go.uber.org/zap"
)

// NewLogger builds a production zap logger in release mode and a
// development logger otherwise.
func NewLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
