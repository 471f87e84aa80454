package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port             string `envconfig:"PORT" default:"8080"`
	GatewayBaseURL   string `envconfig:"GATEWAY_BASE_URL" default:"https://eu-test.oppwa.com"`
	AccessToken      string `envconfig:"GATEWAY_ACCESS_TOKEN"`
	EntityID         string `envconfig:"GATEWAY_ENTITY_ID"`
	Currency         string `envconfig:"CURRENCY" default:"SAR"`
	RedirectBaseURL  string `envconfig:"REDIRECT_BASE_URL" default:"http://localhost:3000"`
	AWSRegion        string `envconfig:"AWS_REGION" default:"me-south-1"`
	OrderTableName   string `envconfig:"ORDER_TABLE_NAME" default:"orders"`
	CartTableName    string `envconfig:"CART_TABLE_NAME" default:"carts"`
	KafkaBrokers     string `envconfig:"KAFKA_BROKERS" default:""`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT" default:""` // DynamoDB Local
}

// Load reads configuration from the environment. The gateway credential and
// entity id have no sane defaults, so their absence is a startup failure
// rather than a per-request one.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.AccessToken == "" {
		return nil, errors.New("GATEWAY_ACCESS_TOKEN is required")
	}
	if cfg.EntityID == "" {
		return nil, errors.New("GATEWAY_ENTITY_ID is required")
	}
	return &cfg, nil
}
