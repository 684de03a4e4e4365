package sitegen

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// newLogger builds the root go-logger instance from configuration. Modules
// obtain named children from it via GetLogger.
func newLogger(cfg LoggingConfig) (*glog.BaseLogger, error) {
	options := []glog.Option{}

	if level := normalizeLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	case "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	default:
		return nil, fmt.Errorf("sitegen: unsupported log format %q", cfg.Format)
	}

	return glog.NewLogger(options...), nil
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	case "fatal":
		return glog.Fatal
	default:
		return ""
	}
}
