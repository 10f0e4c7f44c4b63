package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/tdnguyen/luxauto/internal/flagx"
	"github.com/tdnguyen/luxauto/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the pause can be written either as a string like "2s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	LogLevel     string         `json:"log_level"`
	SubmitDelay  timex.Duration `json:"submit_delay"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags via flagx.JsonConfigFlags();
// when absent, no JSON is loaded. Read or unmarshal errors panic (the caller
// may recover). Intended usage is defaults -> parseJson -> parseFlags, where
// later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.SubmitDelay.Duration != 0 {
		cfg.SubmitDelay = time.Duration(jc.SubmitDelay.Duration)
	}
}
