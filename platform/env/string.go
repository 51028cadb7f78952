package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the value of an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	log.Debugw("config", "env", env, "default", def)
	return def
}

// Must return the value of an env var, stopping the process if the env var is not set
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatalf("env var %s is required", env)
	}
	return v
}
