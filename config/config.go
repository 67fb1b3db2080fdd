package config

import (
	"github.com/spf13/viper"
)

type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	DataDir string `mapstructure:"dataDir"`
	Driver  string `mapstructure:"driver"`
	Path    string `mapstructure:"path"`
}

type Config struct {
	Store StoreConfig `mapstructure:"store"`
}

var vp *viper.Viper

func LoadConfig() (Config, error) {
	vp = viper.New()

	var config Config

	vp.SetConfigName("config")
	vp.SetConfigType("json")
	vp.AddConfigPath("config")

	err := vp.ReadInConfig()
	if err != nil {
		return Config{}, err
	}

	err = vp.Unmarshal(&config)
	if err != nil {
		return Config{}, err
	}

	return config, nil
}
