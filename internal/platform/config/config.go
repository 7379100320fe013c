package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	APIHost string
	APIPort string

	DBConnStr         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	MigrateOnStart    bool

	RedisAddr      string // Empty disables the judge queue
	RedisPassword  string
	RedisDB        int
	JudgeQueueName string

	SubmitterUserID    int
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration

	LogLevel  string
	LogFormat string
	LogCaller bool

	// EnvFileLoaded is false when the env file was absent.
	EnvFileLoaded bool
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.APIHost + ":" + c.APIPort
}

// RegisterFlags adds the command-line flags Load understands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("env-file", ".env", "dotenv file loaded before reading the environment")
	fs.Bool("migrate", false, "apply the database schema on start (MIGRATE_ON_START)")
	fs.String("port", "", "HTTP port to listen on (API_PORT)")
}

var defaults = map[string]interface{}{
	"API_HOST":             "127.0.0.1",
	"API_PORT":             "8080",
	"DATABASE_URL":         "",
	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_USER":              "user",
	"DB_PASSWORD":          "password",
	"DB_NAME":              "judge",
	"DB_SSLMODE":           "disable",
	"DB_MAX_OPEN_CONNS":    5,
	"DB_MAX_IDLE_CONNS":    5,
	"DB_CONN_MAX_LIFETIME": 5 * time.Minute,
	"MIGRATE_ON_START":     false,
	"REDIS_ADDR":           "",
	"REDIS_PASSWORD":       "",
	"REDIS_DB":             0,
	"JUDGE_QUEUE_NAME":     "judge_jobs_queue",
	"SUBMITTER_USER_ID":    1,
	"CORS_ALLOWED_ORIGINS": "http://localhost:5173",
	"REQUEST_TIMEOUT":      60 * time.Second,
	"SHUTDOWN_TIMEOUT":     15 * time.Second,
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "text",
	"LOG_CALLER":           false,
}

// Load reads the env file named by --env-file, then resolves every setting
// from flags, the environment and defaults, in that order.
func Load(flags *pflag.FlagSet) (*Config, error) {
	envFile := ".env"
	if flags != nil {
		if f := flags.Lookup("env-file"); f != nil {
			envFile = f.Value.String()
		}
	}
	loaded := true
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		loaded = false
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if flags != nil {
		for flagName, key := range map[string]string{"migrate": "MIGRATE_ON_START", "port": "API_PORT"} {
			if f := flags.Lookup(flagName); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind --%s: %w", flagName, err)
				}
			}
		}
	}

	cfg := &Config{
		APIHost:            v.GetString("API_HOST"),
		APIPort:            v.GetString("API_PORT"),
		DBConnStr:          v.GetString("DATABASE_URL"),
		DBMaxOpenConns:     v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:     v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:  v.GetDuration("DB_CONN_MAX_LIFETIME"),
		MigrateOnStart:     v.GetBool("MIGRATE_ON_START"),
		RedisAddr:          strings.TrimSpace(v.GetString("REDIS_ADDR")),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		JudgeQueueName:     v.GetString("JUDGE_QUEUE_NAME"),
		SubmitterUserID:    v.GetInt("SUBMITTER_USER_ID"),
		CORSAllowedOrigins: splitCSV(v.GetString("CORS_ALLOWED_ORIGINS")),
		RequestTimeout:     v.GetDuration("REQUEST_TIMEOUT"),
		ShutdownTimeout:    v.GetDuration("SHUTDOWN_TIMEOUT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		LogCaller:          v.GetBool("LOG_CALLER"),
		EnvFileLoaded:      loaded,
	}

	if cfg.DBConnStr == "" {
		cfg.DBConnStr = "host=" + v.GetString("DB_HOST") +
			" port=" + v.GetString("DB_PORT") +
			" user=" + v.GetString("DB_USER") +
			" password=" + v.GetString("DB_PASSWORD") +
			" dbname=" + v.GetString("DB_NAME") +
			" sslmode=" + v.GetString("DB_SSLMODE")
	}

	if cfg.SubmitterUserID <= 0 {
		return nil, fmt.Errorf("SUBMITTER_USER_ID must be positive, got %d", cfg.SubmitterUserID)
	}
	if cfg.JudgeQueueName == "" {
		return nil, errors.New("JUDGE_QUEUE_NAME must not be empty")
	}
	return cfg, nil
}

func splitCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, strings.TrimRight(trimmed, "/"))
		}
	}
	return out
}
