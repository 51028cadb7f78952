package env

import (
	"go.uber.org/zap"
	"strconv"
)

// BoolDefault return the result of searching an env var, if the env var value is empty, return a default value as bool
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	orDefault := OrDefault(log, env, def)
	v, err := strconv.ParseBool(orDefault)
	if err != nil {
		log.Warnw("config", "env", env, "value", orDefault, "ERROR", err)
		v, _ = strconv.ParseBool(def)
	}
	return v
}
