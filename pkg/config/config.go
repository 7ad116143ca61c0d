package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	Invite    InviteConfig    `mapstructure:"invite"`
	Messaging MessagingConfig `mapstructure:"messaging"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DatabaseConfig struct {
	// "mysql" or "sqlite"
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LogConfig struct {
	Level          string `mapstructure:"level"`
	ProductionMode bool   `mapstructure:"production_mode"`
}

type InviteConfig struct {
	CodeLength  int `mapstructure:"code_length"`
	MaxAttempts int `mapstructure:"max_attempts"`
}

type MessagingConfig struct {
	// "none" or "kafka"
	Provider string      `mapstructure:"provider"`
	Kafka    KafkaConfig `mapstructure:"kafka"`
}

type KafkaConfig struct {
	Brokers     []string `mapstructure:"brokers"`
	TopicPrefix string   `mapstructure:"topic_prefix"`
}

var GlobalConfig Config

// Init loads config/config.yaml from the project root.
func Init() error {
	return load("config")
}

// InitTest loads config/config.test.yaml.
func InitTest() error {
	return load("config.test")
}

func load(name string) error {
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(filepath.Dir(filepath.Dir(b)))

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(basepath, "config"))
	v.AddConfigPath("./config")

	v.SetEnvPrefix("DECISION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	GlobalConfig = cfg
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "decision.db")
	v.SetDefault("jwt.expiration", 24*time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.production_mode", false)
	v.SetDefault("invite.code_length", 8)
	v.SetDefault("invite.max_attempts", 5)
	v.SetDefault("messaging.provider", "none")
	v.SetDefault("messaging.kafka.topic_prefix", "decision")
}
