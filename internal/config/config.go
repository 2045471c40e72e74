package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env  string `mapstructure:"env"`
		Port string `mapstructure:"port"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Cache struct {
		TTL time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Mail struct {
		Server   string `mapstructure:"server"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		From     string `mapstructure:"from"`
	} `mapstructure:"mail"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
}

// CacheEnabled reports whether the portfolio read cache was configured at
// startup. Decided once, like the mail gateway.
func (c Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}

func (c Config) EventsEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

func LoadConfig(paths ...string) (cfg Config, err error) {

	if err = godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use environment only.")
	}

	for _, p := range paths {
		viper.AddConfigPath(p)
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.port", "8000")
	viper.SetDefault("cache.ttl", 5*time.Minute)
	viper.SetDefault("mail.server", "smtp.gmail.com")
	viper.SetDefault("mail.port", 587)
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://127.0.0.1:5173"})

	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("cache.ttl", "CACHE_TTL")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	viper.BindEnv("mail.server", "MAIL_SERVER")
	viper.BindEnv("mail.port", "MAIL_PORT")
	viper.BindEnv("mail.username", "MAIL_USERNAME")
	viper.BindEnv("mail.password", "MAIL_PASSWORD")
	viper.BindEnv("mail.from", "MAIL_FROM")

	err = viper.Unmarshal(&cfg)
	return
}
