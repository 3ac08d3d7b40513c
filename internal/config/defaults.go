package config

const (
	defaultRosterHeaderLines      = 1
	defaultRosterStatusLabel      = "Visa"
	defaultIdentityColumn         = 2
	defaultAffiliationColumn      = 3
	defaultRegionalVotes          = 2
	defaultAtLargeVotesPerRound   = 1
	defaultEligibilityFlagColumn  = 12
	defaultEligibilityFlagLabel   = "Yes"
	defaultSupplementaryContest   = "International"
	defaultRegionalOffset         = 4
	defaultAtLargeOffset          = 15
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with the historical GSA ballot layout.
func Default() Config {
	return Config{
		Roster: Roster{
			HeaderLines: defaultRosterHeaderLines,
			StatusLabel: defaultRosterStatusLabel,
		},
		Layout: Layout{
			IdentityColumn:          defaultIdentityColumn,
			AffiliationColumn:       defaultAffiliationColumn,
			RegionalVotesPerContest: defaultRegionalVotes,
			AtLargeVotesPerRound:    defaultAtLargeVotesPerRound,
			EligibilityFlagColumn:   defaultEligibilityFlagColumn,
			EligibilityFlagLabel:    defaultEligibilityFlagLabel,
			SupplementaryContest:    defaultSupplementaryContest,
			RegionalOffset:          defaultRegionalOffset,
			RegionalContests: []string{
				"Social Sciences",
				"Humanities",
				"Health Sciences",
				"Business",
			},
			AtLargeOffset: defaultAtLargeOffset,
			AtLargeContests: []string{
				"VP Administration",
				"VP Internal",
				"VP External",
				"VP Services",
				"President",
			},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
