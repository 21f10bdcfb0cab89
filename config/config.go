package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config holds everything the handlers need: the Mongo client plus
// environment-provided settings.
type Config struct {
	MongoClient *mongo.Client
	DBName      string
	Port        string

	AdminKey string

	// Outbound notification settings. Email is skipped entirely when
	// SMTPHost or AdminEmail is empty.
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	AdminEmail string
}

// Load reads the environment (optionally via a local .env file) and
// connects to MongoDB.
func Load() (*Config, error) {
	// .env is a local-development convenience, never required.
	_ = godotenv.Load()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGO_URI environment variable is not set")
	}

	cfg := &Config{
		DBName:     getenvDefault("DB_NAME", "yantrika"),
		Port:       getenvDefault("PORT", "5000"),
		AdminKey:   os.Getenv("ADMIN_KEY"),
		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   getenvDefault("SMTP_PORT", "587"),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	log.Println("MongoDB connected")

	cfg.MongoClient = client
	return cfg, nil
}

// Collection is shorthand for a collection in the configured database.
func (c *Config) Collection(name string) *mongo.Collection {
	return c.MongoClient.Database(c.DBName).Collection(name)
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
