package refresh

import (
	"time"

	"github.com/arthur-debert/autokanshi/pkg/kanshi"
	"github.com/arthur-debert/autokanshi/pkg/logging"
	"github.com/arthur-debert/autokanshi/pkg/types"
)

// Outcome describes what Apply did to the config.
type Outcome struct {
	// Profile is the profile now describing the layout, last in the config.
	Profile *kanshi.Profile
	// Replaced is set when a stored profile matched; ReplacedIndex is where it
	// was before being moved to the end.
	Replaced      bool
	ReplacedIndex int
}

// Apply records the layout in cfg. When a stored profile describes the same
// outputs it is replaced, keeping its name; otherwise a new timestamped
// profile is appended.
func Apply(cfg *kanshi.Config, outputs []types.Output, now time.Time) (Outcome, error) {
	logger := logging.GetLogger("commands.refresh")

	profile := kanshi.ProfileFromLayout(outputs, now)

	logger.Info().Msg("Detecting matching profile")
	index, found := cfg.Detect(outputs)
	if !found {
		logger.Info().Str("profile", profile.Name).Msg("Creating new profile")
		cfg.Append(profile)
		return Outcome{Profile: profile, ReplacedIndex: -1}, nil
	}

	logger.Info().
		Int("index", index).
		Str("profile", cfg.Profiles[index].Name).
		Msg("Overriding previous profile")
	if err := cfg.Replace(index, profile); err != nil {
		return Outcome{}, err
	}
	return Outcome{Profile: profile, Replaced: true, ReplacedIndex: index}, nil
}
