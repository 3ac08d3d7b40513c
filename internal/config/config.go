package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Roster contains configuration for reading the voter roster file.
type Roster struct {
	// HeaderLines is the number of leading header/comment lines to skip
	// before interpreting records.
	HeaderLines int `toml:"header_lines"`
	// StatusLabel is the sentinel marking a special-status (international)
	// student in the roster's status column.
	StatusLabel string `toml:"status_label"`
}

// Layout contains the ballot column layout. All positions are 1-based as
// presented to operators; internal/layout converts them to 0-based indices.
type Layout struct {
	IdentityColumn          int      `toml:"identity_column"`
	AffiliationColumn       int      `toml:"affiliation_column"`
	RegionalVotesPerContest int      `toml:"regional_votes_per_contest"`
	AtLargeVotesPerRound    int      `toml:"atlarge_votes_per_round"`
	EligibilityFlagColumn   int      `toml:"eligibility_flag_column"`
	EligibilityFlagLabel    string   `toml:"eligibility_flag_label"`
	SupplementaryContest    string   `toml:"supplementary_contest"`
	RegionalOffset          int      `toml:"regional_offset"`
	RegionalContests        []string `toml:"regional_contests"`
	AtLargeOffset           int      `toml:"atlarge_offset"`
	AtLargeContests         []string `toml:"atlarge_contests"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for the election pipeline.
type Config struct {
	Roster  Roster  `toml:"roster"`
	Layout  Layout  `toml:"layout"`
	Logging Logging `toml:"logging"`
}

// Load reads the configuration file at path, merges it over defaults, applies
// environment overrides, and validates the result. An empty path falls back
// to the ELECTIONS_CONFIG environment variable, then to defaults only; a
// non-empty path that cannot be read is a fatal error.
func Load(path string) (*Config, error) {
	cfg := Default()

	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Sample returns the embedded sample configuration text.
func Sample() string {
	return sampleConfig
}
