package config

type Config struct {
	GoogleSheets GoogleSheets `mapstructure:"googleSheets"`
	Sync         Sync         `mapstructure:"sync"`
}

// GoogleSheets is the credentials record for the sheet service.
type GoogleSheets struct {
	SpreadsheetId      string `mapstructure:"spreadsheetId"`
	ApiKey             string `mapstructure:"apiKey"`
	ServiceAccountFile string `mapstructure:"serviceAccountFile"`
	ScoreRange         string `mapstructure:"scoreRange"`
	StatRange          string `mapstructure:"statRange"`
}

type Sync struct {
	Seasons   []string `mapstructure:"seasons"`
	OutputDir string   `mapstructure:"outputDir"`
	Schedule  string   `mapstructure:"schedule"`
}

const (
	PathSpreadsheetId = "googleSheets.spreadsheetId"
	PathApiKey        = "googleSheets.apiKey"
)

// Lookup returns the credential stored under a dotted path. Values are
// returned verbatim; unknown paths report false.
func (c Config) Lookup(path string) (string, bool) {
	switch path {
	case PathSpreadsheetId:
		return c.GoogleSheets.SpreadsheetId, true
	case PathApiKey:
		return c.GoogleSheets.ApiKey, true
	}
	return "", false
}
