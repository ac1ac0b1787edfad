package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr            string `yaml:"http_addr"`
	DataDir             string `yaml:"data_dir"`
	MigrationDir        string `yaml:"migration_dir"`
	DatabaseDSN         string `yaml:"database_dsn"`
	KafkaHost           string `yaml:"kafka_host"`
	DatasetUpdatedTopic string `yaml:"dataset_updated_topic"`
}

var DefaultConfig = Config{
	HTTPAddr:            ":8000",
	DataDir:             "data",
	MigrationDir:        "migration",
	DatabaseDSN:         "root:1@tcp(localhost:3306)/ai_query?parseTime=true",
	KafkaHost:           "localhost:29092",
	DatasetUpdatedTopic: "DATASET_UPDATED_TOPIC",
}

// Load returns DefaultConfig overridden first by the YAML file at path
// (skipped when path is empty or missing) and then by AIQUERY_*
// environment variables.
func Load(path string) (Config, error) {
	conf := DefaultConfig

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return conf, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, &conf); err != nil {
				return conf, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	overrideEnv(&conf.HTTPAddr, "AIQUERY_HTTP_ADDR")
	overrideEnv(&conf.DataDir, "AIQUERY_DATA_DIR")
	overrideEnv(&conf.MigrationDir, "AIQUERY_MIGRATION_DIR")
	overrideEnv(&conf.DatabaseDSN, "AIQUERY_DATABASE_DSN")
	overrideEnv(&conf.KafkaHost, "AIQUERY_KAFKA_HOST")
	overrideEnv(&conf.DatasetUpdatedTopic, "AIQUERY_DATASET_UPDATED_TOPIC")
	return conf, nil
}

func overrideEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
