package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP    HTTPConfig    `yaml:"http"`
	Storage StorageConfig `yaml:"storage"`
	Cache   CacheConfig   `yaml:"cache"`
	Redis   RedisConf     `yaml:"redis"`
}

type HTTPConfig struct {
	Host    string        `yaml:"host" env:"HTTP_HOST"`
	Port    string        `yaml:"port" env:"HTTP_PORT" env-default:"3000"`
	Timeout time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
}

// StorageConfig выбирает драйвер database/sql: sqlite3, pgx или postgres
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite3"`
	DSN    string `yaml:"dsn" env:"STORAGE_DSN" env-default:"./gallery.db"`
}

// CacheConfig: kind is one of memory, redis, none.
type CacheConfig struct {
	Kind string        `yaml:"kind" env:"CACHE_KIND" env-default:"memory"`
	TTL  time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"1m"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`
}

// MustLoad reads the file given by --config or CONFIG_PATH. Without either
// it falls back to defaults and environment variables.
func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		return MustLoadEnv()
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

func MustLoadEnv() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("cannot read config from env: " + err.Error())
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
