package env

import (
	"go.uber.org/zap"
	"os"
	"strconv"
	"time"
)

// OrDefault return the value of the env var, or def when it is unset or empty
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	log.Debugw("env var not set, using default", "env", env, "default", def)
	return def
}

// Must return the value of the env var, stopping the process when it is not set
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatalw("required env var not set", "env", env)
	}
	return v
}

// DurationDefault return the env var parsed as time.Duration, falling back to def
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	orDefault := OrDefault(log, env, def)
	d, err := time.ParseDuration(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as duration: ", err)
		d, _ = time.ParseDuration(def)
	}
	return d
}

// BoolDefault return the env var parsed as bool, falling back to def
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	orDefault := OrDefault(log, env, def)
	b, err := strconv.ParseBool(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as bool: ", err)
		b, _ = strconv.ParseBool(def)
	}
	return b
}
