package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRoster(); err != nil {
		return err
	}
	if err := c.validateLayout(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRoster() error {
	if c.Roster.HeaderLines < 0 {
		return errors.New("roster.header_lines must be >= 0")
	}
	if strings.TrimSpace(c.Roster.StatusLabel) == "" {
		return errors.New("roster.status_label must be set")
	}
	return nil
}

func (c *Config) validateLayout() error {
	if err := ensurePositiveMap(map[string]int{
		"layout.identity_column":            c.Layout.IdentityColumn,
		"layout.affiliation_column":         c.Layout.AffiliationColumn,
		"layout.regional_votes_per_contest": c.Layout.RegionalVotesPerContest,
		"layout.atlarge_votes_per_round":    c.Layout.AtLargeVotesPerRound,
		"layout.eligibility_flag_column":    c.Layout.EligibilityFlagColumn,
		"layout.regional_offset":            c.Layout.RegionalOffset,
		"layout.atlarge_offset":             c.Layout.AtLargeOffset,
	}); err != nil {
		return err
	}
	if strings.TrimSpace(c.Layout.EligibilityFlagLabel) == "" {
		return errors.New("layout.eligibility_flag_label must be set")
	}
	if strings.TrimSpace(c.Layout.SupplementaryContest) == "" {
		return errors.New("layout.supplementary_contest must be set")
	}
	if len(c.Layout.RegionalContests) == 0 {
		return errors.New("layout.regional_contests must include at least one contest")
	}
	if len(c.Layout.AtLargeContests) == 0 {
		return errors.New("layout.atlarge_contests must include at least one contest")
	}
	if err := ensureDistinct("layout.regional_contests", c.Layout.RegionalContests); err != nil {
		return err
	}
	if err := ensureDistinct("layout.atlarge_contests", c.Layout.AtLargeContests); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}

func ensureDistinct(key string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return fmt.Errorf("%s must not contain empty names", key)
		}
		if _, ok := seen[trimmed]; ok {
			return fmt.Errorf("%s lists %q more than once", key, trimmed)
		}
		seen[trimmed] = struct{}{}
	}
	return nil
}
