package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pyrmon/pyrmon/pkg/config"
)

// envVarPrefix is the prefix for all pyrmon environment variables.
const envVarPrefix = "PYRMON_"

// applyEnv overlays PYRMON_* environment variables onto cfg, returning a
// warning per variable that could not be applied.
func applyEnv(cfg *config.Config) []string {
	var warnings []string

	if v, ok := lookup("PROJECT_ROOT"); ok {
		cfg.ProjectRoot = v
	}
	if v, ok := lookup("RESULTS_DIR"); ok {
		cfg.ResultsDir = v
	}
	if v, ok := lookup("COLOR"); ok {
		cfg.Color = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	if v, ok := lookup("MAX_DISPLAY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("%sMAX_DISPLAY=%q is not an integer, ignoring", envVarPrefix, v))
		} else {
			cfg.MaxDisplay = n
		}
	}

	// Commands are whitespace-separated; quoting is not supported.
	if v, ok := lookup("ANALYZER_COMMAND"); ok {
		if fields := strings.Fields(v); len(fields) > 0 {
			cfg.Analyzer.Command = fields
		}
	}
	if v, ok := lookup("INSTALL_COMMAND"); ok {
		if fields := strings.Fields(v); len(fields) > 0 {
			cfg.Analyzer.Install = fields
		}
	}

	return warnings
}

func lookup(name string) (string, bool) {
	value, ok := os.LookupEnv(envVarPrefix + name)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
