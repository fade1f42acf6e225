// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	migrate        = pflag.Bool("migrate", true, "Runs database migrations on startup")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDBDrivers = []string{"sqlite", "postgres"}
)

// Config holds every runtime setting the application needs. It is built
// once in Load and treated as immutable afterwards. Components receive it
// through their constructors instead of reading viper or the environment.
type Config struct {
	LogLevel string
	Migrate  bool

	Host struct {
		Domain     string
		Port       int
		SSLEnabled bool
		CORSOrigin []string
	}

	DB struct {
		Driver string
		DSN    string
	}

	JWT struct {
		Secret          string
		AccessTTL       time.Duration
		VerificationTTL time.Duration
	}

	Reset struct {
		TTL time.Duration
	}

	Argon struct {
		Memory      uint32
		Iterations  uint32
		Parallelism uint8
	}

	Mail struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
	}
}

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Load prepares everything config-related so that the app can start
// working. It returns an error if something is critically wrong and the
// application can't run because of that.
func Load() (*Config, error) {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")
	v.BindEnv("host.ssl_enabled", "host_ssl_enabled")
	v.BindEnv("host.cors_origins", "host_cors_origins")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.access_ttl", "jwt_access_ttl")
	v.BindEnv("jwt.verification_ttl", "jwt_verification_ttl")

	v.BindEnv("reset.ttl", "reset_ttl")

	v.BindEnv("argon.memory", "argon_memory")
	v.BindEnv("argon.iterations", "argon_iterations")
	v.BindEnv("argon.parallelism", "argon_parallelism")

	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.username", "mail_username")
	v.BindEnv("mail.password", "mail_password")
	v.BindEnv("mail.from", "mail_sender_address")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")
	v.SetDefault("host.ssl_enabled", false)
	v.SetDefault("host.cors_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "database.db")

	v.SetDefault("jwt.access_ttl", "5h")
	v.SetDefault("jwt.verification_ttl", "24h")

	v.SetDefault("reset.ttl", "1h")

	v.SetDefault("argon.memory", 64*1024)
	v.SetDefault("argon.iterations", 3)
	v.SetDefault("argon.parallelism", 2)

	v.SetDefault("mail.port", 587)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return nil, errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return nil, errors.New("invalid port provided")
	}

	if !slices.Contains(validDBDrivers, v.GetString("db.driver")) {
		return nil, errors.New("invalid database driver provided")
	}

	if v.GetString("db.dsn") == "" {
		return nil, errors.New("database DSN can't be empty")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetDuration("jwt.access_ttl") <= 0 {
		return nil, errors.New("jwt.access_ttl must be bigger than 0")
	}

	if v.GetDuration("jwt.verification_ttl") <= 0 {
		return nil, errors.New("jwt.verification_ttl must be bigger than 0")
	}

	if v.GetDuration("reset.ttl") <= 0 {
		return nil, errors.New("reset.ttl must be bigger than 0")
	}

	if v.GetInt("argon.memory") <= 0 || v.GetInt("argon.iterations") <= 0 || v.GetInt("argon.parallelism") <= 0 {
		return nil, errors.New("argon parameters must be bigger than 0")
	}

	if v.GetString("mail.host") == "" {
		fmt.Println("[WARNING]: No mail.host configured. Verification and password reset mails won't be delivered")
	}

	c := &Config{
		LogLevel: v.GetString("app.log_level"),
		Migrate:  *migrate,
	}

	c.Host.Domain = v.GetString("host.domain")
	c.Host.Port = v.GetInt("host.port")
	c.Host.SSLEnabled = v.GetBool("host.ssl_enabled")
	c.Host.CORSOrigin = v.GetStringSlice("host.cors_origins")

	c.DB.Driver = v.GetString("db.driver")
	c.DB.DSN = v.GetString("db.dsn")

	c.JWT.Secret = v.GetString("jwt.secret")
	c.JWT.AccessTTL = v.GetDuration("jwt.access_ttl")
	c.JWT.VerificationTTL = v.GetDuration("jwt.verification_ttl")

	c.Reset.TTL = v.GetDuration("reset.ttl")

	c.Argon.Memory = v.GetUint32("argon.memory")
	c.Argon.Iterations = v.GetUint32("argon.iterations")
	c.Argon.Parallelism = uint8(v.GetUint32("argon.parallelism"))

	c.Mail.Host = v.GetString("mail.host")
	c.Mail.Port = v.GetInt("mail.port")
	c.Mail.Username = v.GetString("mail.username")
	c.Mail.Password = v.GetString("mail.password")
	c.Mail.From = v.GetString("mail.from")

	return c, nil
}
