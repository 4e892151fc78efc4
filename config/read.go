package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/spf13/viper"
)

const (
	PlaceholderSpreadsheetId = "YOUR_SPREADSHEET_ID_HERE"
	PlaceholderApiKey        = "YOUR_GOOGLE_API_KEY_HERE"

	LocalPath = "config/config.local.yaml"
)

//go:embed config.example.yaml
var templateYAML []byte

// TemplateYAML returns a copy of the checked-in configuration template.
func TemplateYAML() []byte {
	return bytes.Clone(templateYAML)
}

// Template returns the configuration exactly as shipped in the template.
func Template() (Config, error) {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(templateYAML)); err != nil {
		return Config{}, fmt.Errorf("error reading config template: %w", err)
	}
	return unmarshal(v)
}

// Read loads the config file at path and applies environment overrides.
// Every call builds a fresh viper instance, so repeated reads of the same
// file yield equal values.
func Read(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	bindEnv(v, PathSpreadsheetId, "GOOGLE_SPREADSHEET_ID")
	bindEnv(v, PathApiKey, "GOOGLE_API_KEY")
	bindEnv(v, "googleSheets.serviceAccountFile", "GOOGLE_SERVICE_ACCOUNT_FILE")
	bindEnv(v, "googleSheets.scoreRange", "NINEBLOCKER_SCORE_RANGE")
	bindEnv(v, "googleSheets.statRange", "NINEBLOCKER_STAT_RANGE")
	bindEnv(v, "sync.seasons", "NINEBLOCKER_SEASONS")
	bindEnv(v, "sync.outputDir", "NINEBLOCKER_OUTPUT_DIR")
	bindEnv(v, "sync.schedule", "NINEBLOCKER_SYNC_SCHEDULE")

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("googleSheets.scoreRange", "'전체득점'!A1:Z")
	v.SetDefault("googleSheets.statRange", "'부가기록 계산'!A1:L")
	v.SetDefault("sync.outputDir", "data")
	v.SetDefault("sync.schedule", "@every 10m")
	return v
}

// bindEnv binds an environment variable with an optional default value
func bindEnv(v *viper.Viper, configKey, envKey string, defaultValue ...interface{}) {
	if len(defaultValue) > 0 {
		v.SetDefault(configKey, defaultValue[0])
	}
	_ = v.BindEnv(configKey, envKey)
}

func unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return cfg, nil
}
