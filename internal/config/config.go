package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv pulls in a .env file when one is present. Missing files are not
// an error; deployed environments set variables directly.
func LoadEnv() error {
	for _, path := range []string{".env", ".env.local"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			break
		}
	}
	return nil
}

// Pipeline holds the dispatcher-side settings.
type Pipeline struct {
	LanguageCode string
	OutputBucket string
	TopicARN     string
}

func PipelineFromEnv() Pipeline {
	return Pipeline{
		LanguageCode: getenv("TRANSCRIBE_LANGUAGE_CODE", "en-US"),
		OutputBucket: os.Getenv("TRANSCRIBE_OUTPUT_BUCKET"),
		TopicARN:     os.Getenv("SNS_TOPIC_ARN"),
	}
}

// Database holds the relational store connection settings.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func DatabaseFromEnv() Database {
	return Database{
		Host:     os.Getenv("DB_HOST"),
		Port:     getenv("DB_PORT", "5432"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}
}

// DSN renders the lib/pq connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Frontend holds the reporting surface settings.
type Frontend struct {
	Port string
}

func FrontendFromEnv() Frontend {
	return Frontend{Port: getenv("PORT", "8080")}
}

// Ingest holds the upload-side settings.
type Ingest struct {
	LandingBucket string
}

func IngestFromEnv() Ingest {
	return Ingest{LandingBucket: os.Getenv("LANDING_BUCKET")}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
