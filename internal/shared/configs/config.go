package configs

// Config holds all configuration for the application.
type Config struct {
	Server        ServerConfig        `mapstructure:"server" validate:"required"`
	Log           LogConfig           `mapstructure:"log" validate:"required"`
	Kafka         KafkaConfig         `mapstructure:"kafka" validate:"required"`
	Mongo         MongoConfig         `mapstructure:"mongo" validate:"required"`
	Postgres      PostgresConfig      `mapstructure:"postgres" validate:"required"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch" validate:"required"`
	Redis         RedisConfig         `mapstructure:"redis" validate:"required"`
	Cache         CacheConfig         `mapstructure:"cache" validate:"required"`
	Realtime      RealtimeConfig      `mapstructure:"realtime" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// KafkaConfig holds the partitioned-log configuration for the behavior event topic.
type KafkaConfig struct {
	Brokers        []string `mapstructure:"brokers" validate:"required,min=1"`
	Topic          string   `mapstructure:"topic" validate:"required"`
	GroupID        string   `mapstructure:"group_id" validate:"required"`
	Workers        int      `mapstructure:"workers" validate:"required,min=1"`
	BatchSize      int      `mapstructure:"batch_size" validate:"required,min=1"`
	MaxRetries     int      `mapstructure:"max_retries" validate:"min=0"`
	RetryDelayMs   int      `mapstructure:"retry_delay_ms" validate:"required,min=1"`
	PollTimeoutMs  int      `mapstructure:"poll_timeout_ms" validate:"required,min=1"`
	WriteTimeoutMs int      `mapstructure:"write_timeout_ms" validate:"required,min=1"`
}

// MongoConfig holds the durable event store configuration.
type MongoConfig struct {
	URI      string `mapstructure:"uri" validate:"required"`
	Database string `mapstructure:"database" validate:"required"`
}

// PostgresConfig holds the canonical product store configuration.
type PostgresConfig struct {
	DSN string `mapstructure:"dsn" validate:"required"`
}

// ElasticsearchConfig holds the search/analytics store configuration.
type ElasticsearchConfig struct {
	Addresses    []string `mapstructure:"addresses" validate:"required,min=1"`
	EventIndex   string   `mapstructure:"event_index" validate:"required"`
	ProductIndex string   `mapstructure:"product_index" validate:"required"`
}

// RedisConfig holds the cache backend configuration.
type RedisConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
	DB   int    `mapstructure:"db" validate:"min=0"`
}

// CacheConfig holds per-class cache TTLs, in minutes.
// Each cache class has an independent TTL proportional to its volatility.
type CacheConfig struct {
	ProductsTTLMinutes    int `mapstructure:"products_ttl_minutes" validate:"required,min=1"`
	ProductByIDTTLMinutes int `mapstructure:"product_by_id_ttl_minutes" validate:"required,min=1"`
	CategoryTTLMinutes    int `mapstructure:"category_ttl_minutes" validate:"required,min=1"`
	PopularTTLMinutes     int `mapstructure:"popular_ttl_minutes" validate:"required,min=1"`
	AnalyticsTTLMinutes   int `mapstructure:"analytics_ttl_minutes" validate:"required,min=1"`
}

// RealtimeConfig holds the in-memory counter window configuration.
type RealtimeConfig struct {
	WindowHours int `mapstructure:"window_hours" validate:"required,min=1"`
}
