package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is built once at startup and passed to each component.
// Secrets are only read from the environment, never from the yaml file.
type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	APISecret  string     `yaml:"-" env:"API_SECRET" env-required:"true"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Generator  Generator  `yaml:"generator"`
	Moderation Moderation `yaml:"moderation"`
	Storage    Storage    `yaml:"storage"`
	Kafka      Kafka      `yaml:"kafka"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8082"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-required:"true"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-required:"true"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"gallery"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSL_MODE" env-default:"disable"`
}

type Generator struct {
	BaseURL string        `yaml:"base_url" env:"GENERATOR_URL" env-required:"true"`
	APIKey  string        `yaml:"-" env:"GENERATOR_API_KEY" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env-default:"60s"`
}

type Moderation struct {
	APIKey  string `yaml:"-" env:"MODERATION_API_KEY" env-required:"true"`
	BaseURL string `yaml:"base_url" env:"MODERATION_URL" env-default:"https://api.groq.com/openai/v1"`
	Model   string `yaml:"model" env:"MODERATION_MODEL" env-default:"llama-3.1-8b-instant"`
}

type Storage struct {
	CloudName string        `yaml:"cloud_name" env:"STORAGE_CLOUD_NAME" env-required:"true"`
	APIKey    string        `yaml:"-" env:"STORAGE_API_KEY" env-required:"true"`
	APISecret string        `yaml:"-" env:"STORAGE_API_SECRET" env-required:"true"`
	UploadURL string        `yaml:"upload_url" env:"STORAGE_UPLOAD_URL" env-default:"https://api.cloudinary.com/v1_1"`
	Folder    string        `yaml:"folder" env-default:"ai-generated"`
	Timeout   time.Duration `yaml:"timeout" env-default:"30s"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"gallery-events"`
}

// MustLoad reads the yaml file pointed to by CONFIG_PATH, layered with
// environment variables. A .env file is honored when present.
func MustLoad() *Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
