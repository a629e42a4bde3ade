// Package config loads MeetCost settings from an optional TOML file with
// environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/meetcost/meetcost/internal/models"
)

// DefaultSiteURL is the origin used for share links.
const DefaultSiteURL = "https://meetcost.app"

// MeetingTypes are the suggested meeting classifications.
var MeetingTypes = []string{
	"General",
	"Stand Up",
	"Touch Base",
	"1:1",
	"Sprint Planning",
	"Retrospective",
	"All Hands",
	"Brainstorm",
	"Kickoff",
	"Status Update",
	"Review",
	"Sync",
	"Other",
}

type Config struct {
	// SiteURL is the origin for generated share links.
	SiteURL string

	// DBPath is where the meeting history database lives.
	DBPath string

	// BaseCurrency is the display currency (rates convert from USD).
	BaseCurrency string

	// SectorLabels maps sector types to display labels.
	SectorLabels map[models.SectorType]string

	// SectorDisclaimer is appended to public-sector receipts.
	SectorDisclaimer string

	// ReceiptFooter and ReceiptFooterMarkdown close out exported receipts.
	ReceiptFooter         string
	ReceiptFooterMarkdown string
}

type fileConfig struct {
	SiteURL      string `toml:"site_url"`
	DBPath       string `toml:"db_path"`
	BaseCurrency string `toml:"base_currency"`
}

// Load reads the config file (if present) and applies env overrides.
func Load() (*Config, error) {
	cfg := &Config{
		SiteURL:      DefaultSiteURL,
		DBPath:       defaultDBPath(),
		BaseCurrency: "USD",
		SectorLabels: map[models.SectorType]string{
			models.SectorPublic:  "Public sector (taxpayer dollars)",
			models.SectorPrivate: "Private sector",
		},
		SectorDisclaimer:      "MeetCost assumes all public-sector dollars are taxpayer-funded.",
		ReceiptFooter:         "Tracked with MeetCost • meetcost.app",
		ReceiptFooterMarkdown: "Tracked with [MeetCost](https://meetcost.app)",
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err == nil {
			if fc.SiteURL != "" {
				cfg.SiteURL = strings.TrimRight(fc.SiteURL, "/")
			}
			if fc.DBPath != "" {
				cfg.DBPath = expandTilde(fc.DBPath)
			}
			if fc.BaseCurrency != "" {
				cfg.BaseCurrency = strings.ToUpper(fc.BaseCurrency)
			}
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MEETCOST_SITE_URL"); v != "" {
		cfg.SiteURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("MEETCOST_DB_PATH"); v != "" {
		cfg.DBPath = expandTilde(v)
	}
	if v := os.Getenv("MEETCOST_CURRENCY"); v != "" {
		cfg.BaseCurrency = strings.ToUpper(v)
	}
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "meetcost")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "meetcost")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultDBPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "meetcost", "meetings.db")
	}
	return filepath.Join(".", "data", "meetings.db")
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
