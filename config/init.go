package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/cellstrat/invoicestack/internal/logger"
	"github.com/cellstrat/invoicestack/internal/tracing"
)

type Config struct {
	AppConfig        *AppConfig
	Logger           *logger.Config
	Tracing          *tracing.JaegerConfig
	MailboxConfig    *MailboxConfig
	StorageConfig    *StorageConfig
	ExtractionConfig *ExtractionConfig
	InvoiceConfig    *InvoiceConfig
}

func InitConfig() (*Config, error) {
	config := &Config{
		AppConfig:        &AppConfig{},
		Logger:           &logger.Config{},
		Tracing:          &tracing.JaegerConfig{},
		MailboxConfig:    &MailboxConfig{},
		StorageConfig:    &StorageConfig{},
		ExtractionConfig: &ExtractionConfig{},
		InvoiceConfig:    &InvoiceConfig{},
	}

	err := godotenv.Load()
	if err != nil {
		log.Print("Unable to load .env file")
	}

	err = env.Parse(config)
	if err != nil {
		log.Fatalf("Error loading invoicestack config: %v", err)
	}

	return config, nil
}
