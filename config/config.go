package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Log        Log
	Redis      Redis
	AMQP       AMQP
	Ranking    Ranking
	Proctoring Proctoring
}

type Server struct {
	Port string `validate:"required,numeric"`
	Mode string `validate:"oneof=debug release test"`
}

type Database struct {
	Host     string `validate:"required"`
	Port     string `validate:"required"`
	User     string `validate:"required"`
	Password string `json:"-"`
	Name     string `validate:"required"`
	SSLMode  string
	TimeZone string
}

type Log struct {
	Level  string `validate:"oneof=trace debug info warn error"`
	Pretty bool
}

// Redis is optional; an empty Addr disables the leaderboard cache.
type Redis struct {
	Addr           string
	Password       string `json:"-"`
	DB             int    `validate:"gte=0"`
	LeaderboardTTL time.Duration
}

// AMQP is optional; an empty URL disables domain event publishing.
type AMQP struct {
	URL      string `json:"-"`
	Exchange string
}

type Ranking struct {
	// Timezone is the service clock used for weekly/monthly leaderboard windows.
	Timezone string `validate:"required"`
}

type Proctoring struct {
	TickInterval        time.Duration `validate:"gt=0"`
	CameraCheckInterval time.Duration `validate:"gt=0"`
	PostSubmitTimeout   time.Duration `validate:"gt=0"`
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_MODE", "debug")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_TIMEZONE", "UTC")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", true)
	viper.SetDefault("REDIS_LEADERBOARD_TTL", "2m")
	viper.SetDefault("AMQP_EXCHANGE", "aptiprep.events")
	viper.SetDefault("RANKING_TIMEZONE", "UTC")
	viper.SetDefault("PROCTORING_TICK_INTERVAL", "1s")
	viper.SetDefault("PROCTORING_CAMERA_CHECK_INTERVAL", "5s")
	viper.SetDefault("PROCTORING_POST_SUBMIT_TIMEOUT", "10s")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("SERVER_MODE")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.TimeZone = viper.GetString("DATABASE_TIMEZONE")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Pretty = viper.GetBool("LOG_PRETTY")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.LeaderboardTTL = viper.GetDuration("REDIS_LEADERBOARD_TTL")

	config.AMQP.URL = viper.GetString("AMQP_URL")
	config.AMQP.Exchange = viper.GetString("AMQP_EXCHANGE")

	config.Ranking.Timezone = viper.GetString("RANKING_TIMEZONE")

	config.Proctoring.TickInterval = viper.GetDuration("PROCTORING_TICK_INTERVAL")
	config.Proctoring.CameraCheckInterval = viper.GetDuration("PROCTORING_CAMERA_CHECK_INTERVAL")
	config.Proctoring.PostSubmitTimeout = viper.GetDuration("PROCTORING_POST_SUBMIT_TIMEOUT")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := time.LoadLocation(c.Ranking.Timezone); err != nil {
		return fmt.Errorf("invalid RANKING_TIMEZONE %q: %w", c.Ranking.Timezone, err)
	}
	return nil
}

// RankingLocation resolves the ranking clock; Validate guarantees it loads.
func (c *Config) RankingLocation() *time.Location {
	loc, err := time.LoadLocation(c.Ranking.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (d Database) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone)
}
