package bootstrap

import "go.uber.org/zap"

// NewLogger returns a development logger for APP_ENV=development and a
// production JSON logger otherwise.
func NewLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
