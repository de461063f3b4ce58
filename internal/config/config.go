// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	DataDir         string `yaml:"data_dir" env:"DATA_DIR" env-default:"data"`
	HTTPServer      `yaml:"http_server"`
	RedisConnection `yaml:"redis_connection"`
	Session         `yaml:"session"`
	ExternalAPI     `yaml:"external_api"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"localhost:8081"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес означает, что сессии хранятся в памяти процесса.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"3s"`
}

// Session структура для настройки серверных сессий
type Session struct {
	CookieName string        `yaml:"cookie_name" env-default:"session_id"`
	SessionTTL time.Duration `yaml:"session_ttl" env-default:"24h"`
}

// ExternalAPI структура для настройки внешних API-прокси
type ExternalAPI struct {
	ExchangeRateURL string        `yaml:"exchange_rate_url" env-default:"https://api.exchangerate-api.com"`
	NewsAPIURL      string        `yaml:"news_api_url" env-default:"https://newsapi.org/v2"`
	NewsAPIKey      string        `yaml:"news_api_key" env:"NEWS_API_KEY"`
	ClientTimeout   time.Duration `yaml:"client_timeout" env-default:"10s"`
}

// MustLoad функция для загрузки конфига, путь берётся из переменной CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"DataDir: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"  MaxRetries: %d\n"+
			"  DialTimeout: %s\n"+
			"  Timeout: %s\n"+
			"Session:\n"+
			"  CookieName: %s\n"+
			"  TTL: %s\n"+
			"ExternalAPI:\n"+
			"  ExchangeRateURL: %s\n"+
			"  NewsAPIURL: %s\n"+
			"  ClientTimeout: %s\n",
		c.Env,
		c.DataDir,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.AddressRedis,
		c.User,
		c.DB,
		c.MaxRetries,
		c.DialTimeout,
		c.TimeoutRedis,
		c.CookieName,
		c.SessionTTL,
		c.ExchangeRateURL,
		c.NewsAPIURL,
		c.ClientTimeout,
	)
}
