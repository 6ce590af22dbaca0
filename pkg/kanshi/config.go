package kanshi

import (
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/arthur-debert/autokanshi/pkg/errors"
	"github.com/arthur-debert/autokanshi/pkg/logging"
	"github.com/arthur-debert/autokanshi/pkg/types"
	"github.com/spf13/afero"
)

// Config is a kanshi config file held in memory. It only matches the file on
// disk right after Load or Save.
type Config struct {
	Path     string
	Profiles []*Profile
}

// NewConfig returns an empty config that will be saved at path.
func NewConfig(path string) *Config {
	return &Config{Path: path, Profiles: []*Profile{}}
}

// Load reads and parses the config at path. A missing file fails with
// ErrConfigNotFound, an unreadable or non UTF-8 file with ErrConfigRead and a
// grammar violation with ErrConfigParse.
func Load(fs afero.Fs, path string) (*Config, error) {
	logger := logging.GetLogger("kanshi")

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrConfigNotFound, "kanshi config not found").
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrConfigRead, "cannot read kanshi config").
			WithDetail("path", path)
	}
	if !utf8.Valid(data) {
		return nil, errors.New(errors.ErrConfigRead, "kanshi config is not valid UTF-8").
			WithDetail("path", path)
	}

	profiles, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse kanshi config %s", path).
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Int("profiles", len(profiles)).Msg("Loaded kanshi config")
	return &Config{Path: path, Profiles: profiles}, nil
}

// LoadOrEmpty loads the config at path, falling back to an empty config at the
// same path when the file is missing or unreadable. Parse errors are returned.
func LoadOrEmpty(fs afero.Fs, path string) (*Config, error) {
	logger := logging.GetLogger("kanshi")

	cfg, err := Load(fs, path)
	switch {
	case err == nil:
		return cfg, nil
	case errors.IsFatal(err):
		return nil, err
	case errors.IsErrorCode(err, errors.ErrConfigNotFound):
		logger.Info().Str("path", path).Msg("No kanshi config yet, starting from an empty one")
	default:
		logger.Warn().Err(err).Str("path", path).Msg("Could not load kanshi config, starting from an empty one")
	}
	return NewConfig(path), nil
}

// Append adds a profile after every existing one.
func (c *Config) Append(p *Profile) {
	c.Profiles = append(c.Profiles, p)
}

// Replace drops the profile at index and appends p in its place at the end of
// the list. p takes over the dropped profile's name; directives of the dropped
// profile, exec ones included, are not carried over.
func (c *Config) Replace(index int, p *Profile) error {
	if index < 0 || index >= len(c.Profiles) {
		return errors.Newf(errors.ErrInvalidInput, "profile index %d out of range", index).
			WithDetail("profiles", len(c.Profiles))
	}
	p.Name = c.Profiles[index].Name
	c.Profiles = slices.Delete(c.Profiles, index, index+1)
	c.Profiles = append(c.Profiles, p)
	return nil
}

// Detect returns the index of the first profile describing exactly the given
// outputs, ignoring order and duplicates.
func (c *Config) Detect(outputs []types.Output) (int, bool) {
	target := outputSet(outputs)
	for i, p := range c.Profiles {
		if sameSet(p.Outputs(), target) {
			return i, true
		}
	}
	return -1, false
}

// Save overwrites the file at c.Path with the rendered config. The content is
// written to a temporary file next to the target and renamed over it. A
// symlinked config is written through to its target. Concurrent saves are not
// detected: the last one wins.
func (c *Config) Save(fs afero.Fs) error {
	logger := logging.GetLogger("kanshi")
	done := logging.LogOperationStart(logger, "save")
	defer done()

	target := resolveLink(fs, c.Path)
	dir := filepath.Dir(target)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create directory %s", dir)
	}

	tmp, err := afero.TempFile(fs, dir, ".config-*.tmp")
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot open kanshi config for writing").
			WithDetail("path", target)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(c.Render()); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)
		return errors.Wrap(err, errors.ErrFileWrite, "cannot save kanshi config").
			WithDetail("path", target)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)
		return errors.Wrap(err, errors.ErrFileWrite, "cannot save kanshi config").
			WithDetail("path", target)
	}
	if err := fs.Chmod(tmpName, 0644); err != nil {
		logger.Debug().Err(err).Str("path", tmpName).Msg("Could not set config permissions")
	}
	if err := fs.Rename(tmpName, target); err != nil {
		_ = fs.Remove(tmpName)
		return errors.Wrap(err, errors.ErrFileWrite, "cannot replace kanshi config").
			WithDetail("path", target)
	}

	logger.Info().Str("path", target).Int("profiles", len(c.Profiles)).Msg("Saved kanshi config")
	return nil
}

// resolveLink follows path if it is a symlink on a filesystem that supports them.
func resolveLink(fs afero.Fs, path string) string {
	reader, ok := fs.(afero.LinkReader)
	if !ok {
		return path
	}
	link, err := reader.ReadlinkIfPossible(path)
	if err != nil {
		return path
	}
	if !filepath.IsAbs(link) {
		link = filepath.Join(filepath.Dir(path), link)
	}
	return link
}
