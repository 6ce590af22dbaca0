package config

import (
	_ "embed"
	"errors"
	"strings"
	"time"

	akerrors "github.com/arthur-debert/autokanshi/pkg/errors"
	"github.com/arthur-debert/autokanshi/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "CDE_"

// Config is the settings file. Only the autokanshi section is read.
type Config struct {
	Autokanshi Autokanshi `koanf:"autokanshi"`
}

// Autokanshi holds the autokanshi section of the settings.
type Autokanshi struct {
	ScreenLayoutEditor string        `koanf:"screen_layout_editor"`
	ReloadCommand      string        `koanf:"reload_command"`
	Swaymsg            string        `koanf:"swaymsg"`
	CommandTimeout     time.Duration `koanf:"command_timeout"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := load("", false)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the settings file found in the XDG config dirs, if any. On error
// the defaults are returned along with an ErrSettingsLoad error.
func Load() (*Config, error) {
	path, _ := paths.FindSettingsFile()
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit settings file. An empty path skips the
// file layer.
func LoadFrom(path string) (*Config, error) {
	cfg, err := load(path, true)
	if err != nil {
		return Default(), akerrors.Wrap(err, akerrors.ErrSettingsLoad, "could not load settings").
			WithDetail("path", path)
	}
	return cfg, nil
}

func load(path string, withEnv bool) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, err
		}
	}

	if withEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
		}), nil)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, err
	}
	return &cfg, nil
}
