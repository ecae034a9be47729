package store

import (
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where reminder state lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads configuration from a .nudge file in the working
// directory and from NUDGE_-prefixed environment variables. The store
// path defaults to ~/.nudge.db.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.nudge.db")
	v.SetConfigName(".nudge") // .yaml is implicit
	v.SetEnvPrefix("NUDGE")
	v.AutomaticEnv()
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

// PathConfig points the store at an explicit directory, bypassing file and
// environment lookup. Tests use it with t.TempDir.
func PathConfig(path string) Config {
	return &fileConfig{Path: path}
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
