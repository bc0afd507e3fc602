package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	Search     SearchConfig     `yaml:"search"`
	Tasks      TasksConfig      `yaml:"tasks"`
	Moderation ModerationConfig `yaml:"moderation"`
	Notify     NotifyConfig     `yaml:"notify"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// ModerationRPM limits moderation requests per caller per minute; 0 disables it.
	ModerationRPM int `yaml:"moderation_rpm" env:"SERVER_MODERATION_RPM" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer-token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"users-resources"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SearchConfig holds search index settings. An empty Path keeps the indices
// in memory.
type SearchConfig struct {
	Path         string `yaml:"path"          env:"SEARCH_PATH"`
	UsersIndex   string `yaml:"users_index"   env:"SEARCH_USERS_INDEX"   env-default:"users"`
	GroupsIndex  string `yaml:"groups_index"  env:"SEARCH_GROUPS_INDEX"  env-default:"groups"`
	DomainsIndex string `yaml:"domains_index" env:"SEARCH_DOMAINS_INDEX" env-default:"domains"`
	BulkSize     int    `yaml:"bulk_size"     env:"SEARCH_BULK_SIZE"     env-default:"500"`
}

// TasksConfig holds background task runtime settings.
type TasksConfig struct {
	Workers        int           `yaml:"workers"          env:"TASKS_WORKERS"          env-default:"8"`
	MaxRetries     uint64        `yaml:"max_retries"      env:"TASKS_MAX_RETRIES"      env-default:"3"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay" env:"TASKS_RETRY_BASE_DELAY" env-default:"500ms"`
}

// ModerationConfig holds moderation lock settings. Timeouts are in seconds.
type ModerationConfig struct {
	LockDefaultTimeout int    `yaml:"lock_default_timeout" env:"MODERATION_LOCK_DEFAULT_TIMEOUT" env-default:"30"`
	LockRenewalTimeout int    `yaml:"lock_renewal_timeout" env:"MODERATION_LOCK_RENEWAL_TIMEOUT" env-default:"120"`
	LockKeyPrefix      string `yaml:"lock_key_prefix"      env:"MODERATION_LOCK_KEY_PREFIX"      env-default:"user_moderation_lock"`
	LockBackend        string `yaml:"lock_backend"         env:"MODERATION_LOCK_BACKEND"         env-default:"postgres"`
}

// DefaultTimeout returns the lock timeout used on acquisition.
func (c ModerationConfig) DefaultTimeout() time.Duration {
	return time.Duration(c.LockDefaultTimeout) * time.Second
}

// RenewalTimeout returns the lock timeout used when the callback chain renews the lock.
func (c ModerationConfig) RenewalTimeout() time.Duration {
	return time.Duration(c.LockRenewalTimeout) * time.Second
}

// NotifyConfig holds change notification settings.
type NotifyConfig struct {
	Channel string `yaml:"channel" env:"NOTIFY_CHANNEL" env-default:"users_changed"`
}
