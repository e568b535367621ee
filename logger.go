package xdisplay

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var logLevels = map[string]level.Option{
	"debug": level.AllowDebug(),
	"info":  level.AllowInfo(),
	"warn":  level.AllowWarn(),
	"error": level.AllowError(),
	"none":  level.AllowNone(),
}

// newLogger builds the default logfmt logger on stderr for the configured level.
func newLogger(cfg LogConfig) log.Logger {
	if cfg.Level == "none" {
		return log.NewNopLogger()
	}
	allow, ok := logLevels[cfg.Level]
	if !ok {
		allow = level.AllowInfo()
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}
