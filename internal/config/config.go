// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// EnvProduction is the environment name that enables static bundle serving.
const EnvProduction = "production"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr     string
	Port           int
	MongoURI       string
	Environment    string
	BuildDir       string
	ContentDBPath  string
	Locale         language.Tag
	ConnectTimeout time.Duration
}

// IsProduction reports whether the process runs in production mode. Only
// production mode serves the prebuilt bundle with the index.html fallback.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Load reads configuration from environment variables and returns a validated Config.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment take precedence over it.
// Optional variables with defaults: PORT (5003), TFCC_HOST (all interfaces),
// MONGODB_URI (mongodb://localhost:27017/tfcc), TFCC_ENV or NODE_ENV
// (development), TFCC_BUILD_DIR (client/dist), TFCC_CONTENT_DB
// (tfcc-content.db), TFCC_LOCALE (en-IN), TFCC_DB_CONNECT_TIMEOUT (10s).
func Load() (*Config, error) {
	_ = godotenv.Load()

	port := 5003
	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 65535 {
			return nil, fmt.Errorf("PORT has invalid value %q", v)
		}
		port = parsed
	}

	host := os.Getenv("TFCC_HOST")

	mongoURI := "mongodb://localhost:27017/tfcc"
	if v, ok := os.LookupEnv("MONGODB_URI"); ok && v != "" {
		mongoURI = v
	}

	env := "development"
	if v, ok := os.LookupEnv("NODE_ENV"); ok && v != "" {
		env = v
	}
	if v, ok := os.LookupEnv("TFCC_ENV"); ok && v != "" {
		env = v
	}
	env = strings.ToLower(strings.TrimSpace(env))

	buildDir := "client/dist"
	if v, ok := os.LookupEnv("TFCC_BUILD_DIR"); ok && v != "" {
		buildDir = v
	}

	contentDB := "tfcc-content.db"
	if v, ok := os.LookupEnv("TFCC_CONTENT_DB"); ok && v != "" {
		contentDB = v
	}

	locale := language.MustParse("en-IN")
	if v, ok := os.LookupEnv("TFCC_LOCALE"); ok && v != "" {
		parsed, err := language.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("TFCC_LOCALE has invalid language tag %q: %w", v, err)
		}
		locale = parsed
	}

	connectTimeout := 10 * time.Second
	if v, ok := os.LookupEnv("TFCC_DB_CONNECT_TIMEOUT"); ok && v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("TFCC_DB_CONNECT_TIMEOUT has invalid duration %q: %w", v, err)
		}
		connectTimeout = parsed
	}

	return &Config{
		ListenAddr:     net.JoinHostPort(host, strconv.Itoa(port)),
		Port:           port,
		MongoURI:       mongoURI,
		Environment:    env,
		BuildDir:       buildDir,
		ContentDBPath:  contentDB,
		Locale:         locale,
		ConnectTimeout: connectTimeout,
	}, nil
}
