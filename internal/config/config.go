package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name      string `envconfig:"APP_NAME" default:"EcoCycle"`
		Port      int    `envconfig:"PORT" default:"8080"`
		LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
		LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
		// Comma separated; empty disables CORS handling.
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
	}

	DB struct {
		Host            string        `envconfig:"DB_HOST" default:"localhost"`
		Port            int           `envconfig:"DB_PORT" default:"5432"`
		User            string        `envconfig:"DB_USER" default:"postgres"`
		Password        string        `envconfig:"DB_PASSWORD" default:""`
		Name            string        `envconfig:"DB_NAME" default:"ecocycle"`
		MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"25"`
		MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
		MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"5m"`
		Migrate         bool          `envconfig:"DB_MIGRATE" default:"false"`
	}

	Mongo struct {
		URI        string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
		Database   string `envconfig:"MONGO_DATABASE" default:"ecocycle"`
		Collection string `envconfig:"MONGO_PRODUCT_COLLECTION" default:"Product"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret string `envconfig:"AUTH_JWT_SECRET" required:"true"`
		Issuer    string `envconfig:"AUTH_ISSUER" default:"ecocycle-identity"`
	}

	Storage struct {
		// Driver is either "local" or "s3".
		Driver       string `envconfig:"STORAGE_DRIVER" default:"local"`
		UploadDir    string `envconfig:"UPLOAD_DIR" default:"public/uploads"`
		PublicPrefix string `envconfig:"STORAGE_PUBLIC_PREFIX" default:"/uploads"`
		S3Bucket     string `envconfig:"S3_BUCKET"`
		S3Region     string `envconfig:"S3_REGION" default:"us-east-1"`
		MaxImageSize int64  `envconfig:"MAX_IMAGE_SIZE" default:"10485760"`
	}

	Kafka struct {
		Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
		Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
		Topic   string   `envconfig:"KAFKA_TOPIC" default:"marketplace-events"`
	}

	Rewards struct {
		PieceWeightKg float64 `envconfig:"REWARDS_PIECE_WEIGHT_KG" default:"0.1"`
	}

	Dashboard struct {
		ActivityCap      int  `envconfig:"DASHBOARD_ACTIVITY_CAP" default:"5"`
		CollectionsLimit int  `envconfig:"DASHBOARD_COLLECTIONS_LIMIT" default:"5"`
		OrdersLimit      int  `envconfig:"DASHBOARD_ORDERS_LIMIT" default:"10"`
		FeedCap          int  `envconfig:"FEED_CAP" default:"10"`
		FeedCollections  int  `envconfig:"FEED_COLLECTIONS_LIMIT" default:"5"`
		FeedOrders       int  `envconfig:"FEED_ORDERS_LIMIT" default:"10"`
		SampleActivity   bool `envconfig:"DASHBOARD_SAMPLE_ACTIVITY" default:"false"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Rewards.PieceWeightKg < 0 {
		return nil, fmt.Errorf("REWARDS_PIECE_WEIGHT_KG must not be negative")
	}

	if cfg.Storage.Driver == "s3" && cfg.Storage.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=s3")
	}

	return &cfg, nil
}
