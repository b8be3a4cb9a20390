package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress   = ":8080"
	defaultSnapshotPath = "items.json"
)

type Config struct {
	Env      string
	Server   server
	Snapshot snapshot
	Logger   logger
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type snapshot struct {
	Path string `env:"SNAPSHOT_PATH"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	runAddress := viper.GetString("run_address")
	if runAddress == "" {
		// PORT is kept for compatibility with older deployments.
		if port := viper.GetString("port"); port != "" {
			runAddress = ":" + port
		} else {
			runAddress = defaultRunAddress
		}
	}

	snapshotPath := viper.GetString("snapshot_path")
	if snapshotPath == "" {
		snapshotPath = defaultSnapshotPath
	}

	env := viper.GetString("app_env")
	if env == "" {
		env = EnvLocal
	}

	return &Config{
		Env:      env,
		Server:   server{RunAddress: runAddress},
		Snapshot: snapshot{Path: snapshotPath},
		Logger:   logger{LogLevel: viper.GetString("log_level")},
	}
}
