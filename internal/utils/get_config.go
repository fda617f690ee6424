package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
)

type Config struct {
	// Server
	AppPort string `yaml:"APP_PORT"`

	// Storage backends
	DBPath        string `yaml:"DB_PATH"`
	FlatStorePath string `yaml:"FLAT_STORE_PATH"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Image classifier service
	AIModelURL string `yaml:"AI_MODEL_URL"`

	// Local LLM server
	OllamaURL   string `yaml:"OLLAMA_URL"`
	OllamaModel string `yaml:"OLLAMA_MODEL"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "DB_PATH":
		return config.DBPath
	case "FLAT_STORE_PATH":
		return config.FlatStorePath
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "AI_MODEL_URL":
		return config.AIModelURL
	case "OLLAMA_URL":
		return config.OllamaURL
	case "OLLAMA_MODEL":
		return config.OllamaModel
	default:
		return ""
	}
}
