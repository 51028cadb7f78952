package env

import (
	"go.uber.org/zap"
	"time"
)

// DurationDefault return the result of searching an env var, if the env var value is empty, return a default value as time.Duration
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	orDefault := OrDefault(log, env, def)
	v, err := time.ParseDuration(orDefault)
	if err != nil {
		log.Warnw("config", "env", env, "value", orDefault, "ERROR", err)
		v, _ = time.ParseDuration(def)
	}
	return v
}
