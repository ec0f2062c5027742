package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"photovault/internal/infrastructure/database"
	"photovault/internal/infrastructure/identity"
	"photovault/internal/infrastructure/minio"
	"photovault/internal/infrastructure/notifier"
	"photovault/internal/infrastructure/recognition"
	"photovault/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment   string               `yaml:"environment"`
	Default       DefaultConfig        `yaml:"default"`
	MinIOClient   minio.ClientConfig   `yaml:"minio_client"`
	MinIOUploader minio.UploaderConfig `yaml:"minio_uploader"`
	MinIORemover  minio.RemoverConfig  `yaml:"minio_remover"`
	DBConfig      database.Config      `yaml:"db_config"`
	Notifier      notifier.Config      `yaml:"notifier"`
	Recognition   recognition.Config   `yaml:"recognition"`
	Identity      identity.Config      `yaml:"identity"`
	Logger        logger.Config        `yaml:"logger"`
}

type DefaultConfig struct {
	Address string `yaml:"address"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.Notifier.URI = os.Getenv("NOTIFIER_URI")
	config.Identity.ClientSecret = os.Getenv("OIDC_CLIENT_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	return nil
}
