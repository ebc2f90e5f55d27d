package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avasin/brewmart/internal/flagx"
	"github.com/avasin/brewmart/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the login delay either as a string like
// "500ms" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	LoginDelay   timex.Duration `json:"login_delay"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c / -config flags. When no file is given, cfg is left untouched.
// Read or unmarshal errors panic; configuration is resolved before the app
// starts and a broken file should stop it.
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

	cfg.DatabasePath = jc.DatabasePath
	cfg.LoginDelay = time.Duration(jc.LoginDelay.Duration)
}
