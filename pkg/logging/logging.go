// Package logging configures the commonlog backend for the benchmark.
// Logs go to stderr (or a file) so the report on stdout stays exact.
package logging

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/kmAyush/bytecode-interpreter/pkg/config"
)

// Configure sets the global verbosity; each step up enables one more level.
// An empty path logs to stderr.
func Configure(cfg config.LogConfig) {
	var path *string
	if cfg.Path != "" {
		path = &cfg.Path
	}
	commonlog.Configure(cfg.Verbosity, path)
}

func GetLogger(name string) commonlog.Logger {
	return commonlog.GetLogger("accumbench." + name)
}
