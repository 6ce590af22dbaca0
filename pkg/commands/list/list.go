package list

import (
	"github.com/arthur-debert/autokanshi/pkg/kanshi"
	"github.com/arthur-debert/autokanshi/pkg/logging"
	"github.com/arthur-debert/autokanshi/pkg/types"
	"github.com/spf13/afero"
)

// ListProfilesOptions defines the options for the ListProfiles command.
type ListProfilesOptions struct {
	// ConfigPath is the kanshi config to read.
	ConfigPath string
	FileSystem afero.Fs

	// Outputs is the current layout. When Match is set the first profile
	// describing it is flagged.
	Outputs []types.Output
	Match   bool
}

// ListProfiles summarizes the profiles stored in the kanshi config. A missing
// config lists nothing.
func ListProfiles(opts ListProfilesOptions) (*types.ListProfilesResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListProfiles").Msg("Executing command")

	if opts.FileSystem == nil {
		opts.FileSystem = afero.NewOsFs()
	}

	cfg, err := kanshi.LoadOrEmpty(opts.FileSystem, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	result := &types.ListProfilesResult{
		ConfigPath: cfg.Path,
		Profiles:   make([]types.ProfileInfo, len(cfg.Profiles)),
		MatchIndex: -1,
	}

	for i, p := range cfg.Profiles {
		result.Profiles[i] = types.ProfileInfo{
			Index:      i,
			Name:       p.Name,
			Outputs:    p.SortedOutputs(),
			Directives: len(p.Directives),
		}
	}

	if opts.Match {
		if index, found := cfg.Detect(opts.Outputs); found {
			result.MatchIndex = index
			result.Profiles[index].Matched = true
		}
	}

	log.Info().Str("command", "ListProfiles").Int("profileCount", len(result.Profiles)).Msg("Command finished")
	return result, nil
}
