package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type RewardConfig struct {
	Env          string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	RewardDB     `yaml:"reward_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Rewards      `yaml:"rewards"`
	Fraud        `yaml:"fraud"`
	Ingest       `yaml:"ingest"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type RewardDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Rewards struct {
	MinWatchSeconds  int64 `yaml:"min_watch_seconds" env-default:"15"`
	CoinsPerWatch    int64 `yaml:"coins_per_watch" env-default:"5"`
	MaxDailyCoins    int64 `yaml:"max_daily_coins" env-default:"200"`
	CoinsPerCampaign int64 `yaml:"coins_per_campaign" env-default:"50"`
}

type Fraud struct {
	IPDailyLimit          int64 `yaml:"ip_daily_limit" env-default:"5"`
	FingerprintDailyLimit int64 `yaml:"fingerprint_daily_limit" env-default:"5"`
	WindowHours           int   `yaml:"window_hours" env-default:"24"`
}

type Ingest struct {
	MaxAttempts         int    `yaml:"max_attempts" env-default:"5"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds" env-default:"30"`
	ProbeTimeoutSeconds int    `yaml:"probe_timeout_seconds" env-default:"20"`
	FfprobePath         string `yaml:"ffprobe_path" env-default:"ffprobe"`
	MediaBaseURL        string `yaml:"media_base_url"`
}

func MustLoad() *RewardConfig {

	// Processing env config variable and file
	configPath := os.Getenv("REWARD_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("REWARD_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RewardConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
