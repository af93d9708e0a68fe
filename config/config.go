package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Config struct {
	Port          string
	PublicBaseURL string
	Mongo         MongoConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Auth          AuthConfig
	Stripe        StripeConfig
}

type MongoConfig struct {
	URI      string
	Database string
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type RedisConfig struct {
	Host string
	Port string
}

type KafkaConfig struct {
	Broker       string
	PaymentTopic string
	GroupID      string
}

type AuthConfig struct {
	Secret            string
	TokenTTL          time.Duration
	AllowClaimMinting bool
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
}

// Load reads the environment (and a .env file when present). The token
// secret and the Stripe key are mandatory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:5173"),
		Mongo: MongoConfig{
			URI:      mongoURI(),
			Database: getEnv("MONGO_DB", "BistroBossRestaurantDB"),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			User:     getEnv("PG_USER", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_NAME", "bistro"),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Kafka: KafkaConfig{
			Broker:       getEnv("KAFKA_BROKER", "localhost:9092"),
			PaymentTopic: getEnv("KAFKA_PAYMENT_TOPIC", "payment-events"),
			GroupID:      getEnv("KAFKA_GROUP_ID", "order-agg-svc"),
		},
		Auth: AuthConfig{
			Secret:            os.Getenv("SECRET_ACCESS_TOKEN"),
			TokenTTL:          time.Hour,
			AllowClaimMinting: getBool("JWT_CLAIM_MINTING", true),
		},
		Stripe: StripeConfig{
			SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
			Currency:      getEnv("STRIPE_CURRENCY", "usd"),
		},
	}

	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("SECRET_ACCESS_TOKEN is required")
	}
	if cfg.Stripe.SecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if cfg.Stripe.WebhookSecret == "" {
		return nil, fmt.Errorf("STRIPE_WEBHOOK_SECRET is required")
	}
	return cfg, nil
}

// LoadWorker is the reduced configuration of order-agg-svc, which never
// signs tokens or talks to Stripe.
func LoadWorker() *Config {
	_ = godotenv.Load()
	return &Config{
		Postgres: PostgresConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			User:     getEnv("PG_USER", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_NAME", "bistro"),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Kafka: KafkaConfig{
			Broker:       getEnv("KAFKA_BROKER", "localhost:9092"),
			PaymentTopic: getEnv("KAFKA_PAYMENT_TOPIC", "payment-events"),
			GroupID:      getEnv("KAFKA_GROUP_ID", "order-agg-svc"),
		},
	}
}

func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	return "mongodb+srv://" + os.Getenv("DB_USER") + ":" + os.Getenv("DB_PASS") +
		"@" + getEnv("MONGO_HOST", "cluster0.xlwti.mongodb.net") +
		"/?retryWrites=true&w=majority&appName=Cluster0"
}

func MustInitMongo(cfg MongoConfig) *mongo.Client {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	if err := client.Database("admin").RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Pinged your deployment. You successfully connected to MongoDB!")

	return client
}

func MustInitPostgres(cfg PostgresConfig) *sql.DB {
	connStr := "host=" + cfg.Host + " port=" + cfg.Port + " user=" + cfg.User +
		" password=" + cfg.Password + " dbname=" + cfg.Database + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Host + ":" + cfg.Port,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.PaymentTopic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.PaymentTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
