package config

import (
	"slices"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Election  ElectionConfig  `yaml:"election"`
	Realtime  RealtimeConfig  `yaml:"realtime"`
	Mail      MailConfig      `yaml:"mail"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings. TrustProxy honours
// X-Forwarded-For and X-Real-IP; leave it off unless a reverse proxy in
// front of the server overwrites those headers.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret                  string        `yaml:"jwt_secret"                   env:"AUTH_JWT_SECRET"                   env-required:"true"`
	JWTIssuer                  string        `yaml:"jwt_issuer"                   env:"AUTH_JWT_ISSUER"                   env-default:"campus-ballot"`
	AccessTokenTTL             time.Duration `yaml:"access_token_ttl"             env:"AUTH_ACCESS_TOKEN_TTL"             env-default:"15m"`
	RefreshTokenTTL            time.Duration `yaml:"refresh_token_ttl"            env:"AUTH_REFRESH_TOKEN_TTL"            env-default:"168h"`
	PasswordHashCost           int           `yaml:"password_hash_cost"           env:"AUTH_PASSWORD_HASH_COST"           env-default:"12"`
	PasswordMinLength          int           `yaml:"password_min_length"          env:"AUTH_PASSWORD_MIN_LENGTH"          env-default:"6"`
	VerificationTokenTTL       time.Duration `yaml:"verification_token_ttl"       env:"AUTH_VERIFICATION_TOKEN_TTL"       env-default:"24h"`
	VerificationResendCooldown time.Duration `yaml:"verification_resend_cooldown" env:"AUTH_VERIFICATION_RESEND_COOLDOWN" env-default:"1m"`
	VerifyURL                  string        `yaml:"verify_url"                   env:"AUTH_VERIFY_URL"                   env-default:"http://localhost:8080/auth/verify"`
}

// ElectionConfig describes who may vote and who administers the election.
type ElectionConfig struct {
	Name               string `yaml:"name"                 env:"ELECTION_NAME"                 env-default:"IndabaX Elections"`
	AllowedEmailDomain string `yaml:"allowed_email_domain" env:"ELECTION_ALLOWED_EMAIL_DOMAIN" env-default:"@kab.ac.ug"`
	AdminEmailsRaw     string `yaml:"admin_emails"         env:"ELECTION_ADMIN_EMAILS"`
	CatalogPath        string `yaml:"catalog_path"         env:"ELECTION_CATALOG_PATH"`

	// AdminEmails is parsed from AdminEmailsRaw during validation.
	AdminEmails []string `yaml:"-" env:"-"`
}

// IsAdminEmail reports whether email belongs to an election administrator.
func (c ElectionConfig) IsAdminEmail(email string) bool {
	return slices.Contains(c.AdminEmails, strings.ToLower(strings.TrimSpace(email)))
}

// RealtimeConfig controls the tally change feed.
type RealtimeConfig struct {
	ReconnectBase      time.Duration `yaml:"reconnect_base"       env:"REALTIME_RECONNECT_BASE"       env-default:"250ms"`
	ReconnectMax       time.Duration `yaml:"reconnect_max"        env:"REALTIME_RECONNECT_MAX"        env-default:"30s"`
	LoaderWait         time.Duration `yaml:"loader_wait"          env:"REALTIME_LOADER_WAIT"          env-default:"5ms"`
	StreamWriteTimeout time.Duration `yaml:"stream_write_timeout" env:"REALTIME_STREAM_WRITE_TIMEOUT" env-default:"5s"`
}

// MailConfig selects how verification emails are delivered.
type MailConfig struct {
	Driver   string `yaml:"driver"   env:"MAIL_DRIVER"   env-default:"log"`
	Host     string `yaml:"host"     env:"MAIL_HOST"`
	Port     int    `yaml:"port"     env:"MAIL_PORT"     env-default:"587"`
	Username string `yaml:"username" env:"MAIL_USERNAME"`
	Password string `yaml:"password" env:"MAIL_PASSWORD"`
	From     string `yaml:"from"     env:"MAIL_FROM"     env-default:"elections@kab.ac.ug"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request budgets per minute.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"   env:"RATE_LIMIT_AUTH_PER_MINUTE"   env-default:"20"`
	BallotPerMinute int           `yaml:"ballot_per_minute" env:"RATE_LIMIT_BALLOT_PER_MINUTE" env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}
