package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting of the service.
type Config struct {
	AppHost        string
	AppPort        string
	LogLevel       string
	AllowedOrigins []string

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration

	LedgerMaxAttempts int
	LedgerTimezone    string
	DepositHold       time.Duration

	AgentNumbers map[string]string
}

// PostgresDSN builds the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Load reads environment variables from the file at path, if present, and
// returns the resulting configuration. Variables already set in the
// environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.AllowedOrigins = splitList(getEnv("APP_ALLOWED_ORIGINS", "*"))

	// PostgreSQL config
	cfg.PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PostgresUser = getEnv("POSTGRES_USER", "user")
	cfg.PostgresPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PostgresDB = getEnv("POSTGRES_DB", "database")
	if cfg.PostgresPort, err = getInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PostgresMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PostgresMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", "localhost:9092"))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "ledger-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExp, err := getInt("JWT_EXP_SECOND", 3600)
	if err != nil {
		return nil, err
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	// Ledger config
	if cfg.LedgerMaxAttempts, err = getInt("LEDGER_MAX_ATTEMPTS", 5); err != nil {
		return nil, err
	}
	if cfg.LedgerMaxAttempts < 1 {
		return nil, fmt.Errorf("LEDGER_MAX_ATTEMPTS must be >= 1, got %d", cfg.LedgerMaxAttempts)
	}
	cfg.LedgerTimezone = getEnv("LEDGER_TIMEZONE", "Asia/Dhaka")
	if _, err := time.LoadLocation(cfg.LedgerTimezone); err != nil {
		return nil, fmt.Errorf("invalid LEDGER_TIMEZONE: %w", err)
	}
	holdSeconds, err := getInt("DEPOSIT_HOLD_SECONDS", 40)
	if err != nil {
		return nil, err
	}
	cfg.DepositHold = time.Duration(holdSeconds) * time.Second

	// Agent numbers shown for each payment method
	cfg.AgentNumbers = map[string]string{
		"bkash":  getEnv("AGENT_NUMBER_BKASH", "01701884859"),
		"nogod":  getEnv("AGENT_NUMBER_NOGOD", "0170XXXXXXX"),
		"rocket": getEnv("AGENT_NUMBER_ROCKET", "0160XXXXXXX"),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
