package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	CacheRedis  = "redis"
	CacheMemory = "memory"
)

type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	DSN        string           `yaml:"dsn" env:"DSN" env-required:"true"`
	HTTP       HTTPConfig       `yaml:"http"`
	Redis      RedisConf        `yaml:"redis"`
	Cache      CacheConfig      `yaml:"cache"`
	Mail       MailConfig       `yaml:"mail"`
	Site       SiteConfig       `yaml:"site"`
	Admin      AdminConfig      `yaml:"admin"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

type HTTPConfig struct {
	Host         string        `yaml:"host" env:"HTTP_HOST"`
	Port         string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"30s"`

	// Proxy ranges allowed to set X-Forwarded-For in addition to the
	// loopback, link-local and private networks.
	TrustedProxies []string `yaml:"trusted_proxies" env:"HTTP_TRUSTED_PROXIES" env-separator:","`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`
}

type CacheConfig struct {
	// Backend is redis or memory. Empty picks redis when an address is set.
	Backend string        `yaml:"backend" env:"CACHE_BACKEND"`
	TTL     time.Duration `yaml:"ttl" env-default:"5m"`
}

type MailConfig struct {
	Enabled    bool          `yaml:"enabled" env:"MAIL_ENABLED"`
	Host       string        `yaml:"host" env:"MAIL_HOST"`
	Port       int           `yaml:"port" env:"MAIL_PORT" env-default:"587"`
	User       string        `yaml:"user" env:"MAIL_USER"`
	Password   string        `yaml:"password" env:"MAIL_PASSWORD"`
	From       string        `yaml:"from" env:"MAIL_FROM"`
	AdminEmail string        `yaml:"admin_email" env:"MAIL_ADMIN_EMAIL"`
	Timeout    time.Duration `yaml:"timeout" env-default:"10s"`
}

type SiteConfig struct {
	Name string `yaml:"name" env:"SITE_NAME" env-default:"Insurance Guide"`
	URL  string `yaml:"url" env:"SITE_URL" env-default:"http://localhost:3000"`
}

type AdminConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"ADMIN_JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl" env-default:"1h"`
}

type MigrationsConfig struct {
	Auto bool `yaml:"auto" env:"MIGRATIONS_AUTO"`
}

// CacheBackend resolves the configured backend.
func (c *Config) CacheBackend() string {
	switch c.Cache.Backend {
	case CacheRedis, CacheMemory:
		return c.Cache.Backend
	}
	if c.Redis.RedisAddr != "" {
		return CacheRedis
	}
	return CacheMemory
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
