package config

import "github.com/caarlos0/env/v6"

type Config struct {
    // Server configuration
    Server struct {
        // Port the HTTP API listens on
        Port int `env:"SERVER_PORT" envDefault:"5250"`
    }

    // Database configuration
    Database struct {
        // Path to the SQLite database file
        Path string `env:"DATABASE_PATH" envDefault:"database/rentnova.db"`
    }

    // BatchProcessing configuration
    BatchProcessing struct {
        // Maximum number of listings to accumulate before processing
        MaxBatchSize int `env:"BATCH_MAX_SIZE" envDefault:"100"`

        // Buffer size of the ingest queue in batches
        QueueSize int `env:"BATCH_QUEUE_SIZE" envDefault:"50"`

        // Number of concurrent batch processors
        ProcessorCount int `env:"BATCH_PROCESSOR_COUNT" envDefault:"2"`

        // Maximum number of retries for failed batches
        MaxRetries int `env:"BATCH_MAX_RETRIES" envDefault:"3"`

        // Delay between retries in seconds
        RetryDelay int `env:"BATCH_RETRY_DELAY" envDefault:"5"`
    }

    // Scoring configuration
    Scoring struct {
        // Number of concurrent scoring workers per request
        Workers int `env:"SCORING_WORKERS" envDefault:"4"`

        // Optional JSON file overriding the default criterion weights
        WeightsPath string `env:"SCORING_WEIGHTS_PATH"`
    }
}

func LoadConfig() (*Config, error) {
    cfg := &Config{}
    if err := env.Parse(cfg); err != nil {
        return nil, err
    }
    return cfg, nil
}
