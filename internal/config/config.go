package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	MongoURI        string
	MongoDB         string
	MongoCollection string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	BridgeTimeout time.Duration

	KafkaBrokers []string
	AuditTopic   string
}

func loadEnv() {
	exePath, err := os.Getwd()
	if err != nil {
		log.Fatal("Error getting working directory:", err)
	}

	possiblePaths := []string{
		filepath.Join(exePath, ".env"),
		filepath.Join(exePath, "..", ".env"),
		filepath.Join(exePath, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}

	for _, envPath := range possiblePaths {
		examplePath := filepath.Join(filepath.Dir(envPath), ".example.env")
		if err := godotenv.Load(examplePath); err == nil {
			log.Printf("Loaded environment variables from %s", examplePath)
			return
		}
	}

	log.Println("No .env file found, relying on process environment")
}

// FromEnv loads the process configuration. The OpenAI key is the only
// required value without a usable default.
func FromEnv() Config {
	loadEnv()

	cfg := Config{
		Port:            getenv("PORT", "4000"),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getenv("MONGO_DB", "ordergraph"),
		MongoCollection: getenv("MONGO_COLLECTION", "orders"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getenv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		BridgeTimeout:   30 * time.Second,
		AuditTopic:      getenv("AUDIT_TOPIC", "audit_logs"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
