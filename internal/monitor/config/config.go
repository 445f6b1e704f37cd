package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Elasticsearch ElasticsearchConfig
	Kafka         KafkaConfig
	Mail          MailConfig
	Monitor       MonitorConfig
}

type ServerConfig struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type RedisConfig struct {
	Host     string        `envconfig:"REDIS_HOST" required:"true"`
	Port     int           `envconfig:"REDIS_PORT" default:"6379"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"30s"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
}

type KafkaConfig struct {
	Brokers     []string `envconfig:"KAFKA_BROKERS" required:"true"`
	EventsTopic string   `envconfig:"KAFKA_EVENTS_TOPIC" default:"uptime-status-changes"`
}

type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL" required:"true"`
	Password         string `envconfig:"MAIL_PASSWORD" required:"true"`
	Host             string `envconfig:"MAIL_HOST" required:"true"`
	Port             int    `envconfig:"MAIL_PORT" default:"587"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_ADDRESS" required:"true"`
}

type MonitorConfig struct {
	TickInterval       time.Duration `envconfig:"MONITOR_TICK_INTERVAL" default:"1m"`
	WorkerCount        int           `envconfig:"MONITOR_WORKER_COUNT" default:"10"`
	RetentionDays      int           `envconfig:"MONITOR_RETENTION_DAYS" default:"90"`
	CertExpiryWarnDays int           `envconfig:"MONITOR_CERT_EXPIRY_WARN_DAYS" default:"15"`
	RegExpiryWarnDays  int           `envconfig:"MONITOR_REG_EXPIRY_WARN_DAYS" default:"30"`
	UserAgent          string        `envconfig:"MONITOR_USER_AGENT" default:"uptime-monitor/1.0"`
}

// BatchConfig is the subset needed by the one-shot batch runner, which runs
// without the broker, cache or search cluster.
type BatchConfig struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Mail     MailConfig
	Monitor  MonitorConfig
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}

func LoadBatchConfig(path string) (BatchConfig, error) {
	_ = godotenv.Load(path)

	var cfg BatchConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
