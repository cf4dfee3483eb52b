package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// MongoDB
	MongoURI            string // takes precedence over DB_USER/DB_PASS/DB_HOST
	DBUser              string
	DBPass              string
	DBHost              string
	MongoDB             string
	MongoReviewsDB      string
	MongoMaxPoolSize    uint64
	MongoConnectTimeout time.Duration

	// Redis (rate limiting); empty address disables it
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate limit for public write endpoints, per client IP and route
	RateLimitPerMinute    int
	RateLimitAllowPrivate bool

	// JWT
	AccessTokenSecret string
	AccessTokenTTL    time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated; empty allows all

	// Proxies (IPs or CIDRs) whose forwarding headers are believed;
	// empty means the TCP peer is the client
	TrustedProxies string

	// Migrations
	MigrationsDir string
	RunMigrations bool

	// Debug metrics (/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	pool := getint("MONGO_MAX_POOL", 100)
	if pool < 0 {
		pool = 0
	}
	return &Config{
		AppName: getenv("APP_NAME", "food-cooking-server"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "5000"),
		GinMode: getenv("GIN_MODE", "release"),

		MongoURI:            getenv("MONGO_URI", ""),
		DBUser:              getenv("DB_USER", ""),
		DBPass:              getenv("DB_PASS", ""),
		DBHost:              getenv("DB_HOST", "localhost:27017"),
		MongoDB:             getenv("MONGO_DB", "foodDb"),
		MongoReviewsDB:      getenv("MONGO_REVIEWS_DB", "reviewsDb"),
		MongoMaxPoolSize:    uint64(pool),
		MongoConnectTimeout: getdur("MONGO_CONNECT_TIMEOUT", 10*time.Second),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		RateLimitPerMinute:    getint("RATE_LIMIT_PER_MINUTE", 60),
		RateLimitAllowPrivate: getbool("RATE_LIMIT_ALLOW_PRIVATE", false),

		AccessTokenSecret: getenv("ACCESS_TOKEN_SECRET", "devaccesssecret"),
		AccessTokenTTL:    getdur("ACCESS_TOKEN_TTL", time.Hour),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),
		TrustedProxies:     getenv("TRUSTED_PROXIES", ""),

		MigrationsDir: getenv("MIGRATIONS_DIR", "db/migrations"),
		RunMigrations: getbool("RUN_MIGRATIONS", true),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", false),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// MongoConnectionURI returns MONGO_URI when set, otherwise an SRV URI built
// from the Atlas-style DB_USER/DB_PASS/DB_HOST triple. Without credentials a
// plain mongodb:// URI against DB_HOST is returned.
func (c *Config) MongoConnectionURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	if c.DBUser == "" {
		return "mongodb://" + c.DBHost
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUser, c.DBPass),
		Host:     c.DBHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// TrustedProxyList returns the trusted proxies as slice, nil when none.
func (c *Config) TrustedProxyList() []string {
	list := splitList(c.TrustedProxies)
	if len(list) == 0 {
		return nil
	}
	return list
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
