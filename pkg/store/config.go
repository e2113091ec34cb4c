package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the backing key-value store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from a .chronograma config file or the
// CHRONOGRAMA_PATH environment variable, defaulting to ~/.chronograma.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.chronograma.db")
	viper.SetConfigName(".chronograma") // .yaml is implicit
	viper.SetEnvPrefix("CHRONOGRAMA")
	viper.AutomaticEnv()

	if override := os.Getenv("CHRONOGRAMA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
