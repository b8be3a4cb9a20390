package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "http://localhost:8080"
	configDirName        = ".itemkeeper"
	tokenFileName        = "token"
)

type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS"`
	TokenPath     string `env:"TOKEN_PATH"`
	Env           string `env:"APP_ENV"`
}

func MustLoad() *Config {
	viper.AutomaticEnv()

	addr := viper.GetString("server_address")
	if addr == "" {
		addr = defaultServerAddress
	}

	tokenPath := viper.GetString("token_path")
	if tokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("cannot resolve home directory: %v", err)
		}
		tokenPath = filepath.Join(home, configDirName, tokenFileName)
	}

	env := viper.GetString("app_env")
	if env == "" {
		env = "local"
	}

	return &Config{
		ServerAddress: addr,
		TokenPath:     tokenPath,
		Env:           env,
	}
}
