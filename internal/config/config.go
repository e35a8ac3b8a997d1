// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the commands need to wire the process. The zero
// DynamoEndpoint means "use the resolved AWS endpoint"; local development
// points it at DynamoDB Local.
type Config struct {
	Addr             string `env:"APP_ADDR" envDefault:":8080"`
	AWSRegion        string `env:"AWS_REGION" envDefault:"us-east-1"`
	DynamoEndpoint   string `env:"DYNAMO_ENDPOINT"`
	HomesTable       string `env:"HOMES_TABLE" envDefault:"homes"`
	AuthorsTable     string `env:"AUTHORS_TABLE" envDefault:"authors"`
	BooksTable       string `env:"BOOKS_TABLE" envDefault:"books"`
	BooksAuthorIndex string `env:"BOOKS_AUTHOR_INDEX" envDefault:"authorId-index"`
}

// Load applies .env.local when present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load(".env.local")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
