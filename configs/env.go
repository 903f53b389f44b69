package configs

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

//go:embed application.yml
var applicationYAML []byte

//go:embed messages.yml
var messagesYAML []byte

type EnvConfig struct {
	ApplicationName string
	Version         string
	Port            string
	ContextPath     string
}

var Env *EnvConfig

func init() {
	loadDotEnv()
	viper.AutomaticEnv()

	if err := resource.Load(bytes.NewReader(applicationYAML)); err != nil {
		log.Fatalf("Fail to load embedded properties: %v", err)
	}
	if err := msg.Load(bytes.NewReader(messagesYAML)); err != nil {
		log.Fatalf("Fail to load embedded messages: %v", err)
	}

	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		if err := resource.Init(path); err != nil {
			log.Fatalf("%v", err)
		}
		log.Info(msg.GetMessage("app.config-loaded", path))
	}
	if path, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		if err := msg.Init(path); err != nil {
			log.Fatalf("%v", err)
		}
		log.Info(msg.GetMessage("app.config-loaded", path))
	}

	Env = &EnvConfig{
		ApplicationName: resource.GetStringOrDefault("app.name", getStringOrDefault("APPLICATION_NAME", "todo-api")),
		Version:         resource.GetStringOrDefault("app.version", "1.0.0"),
		Port:            resource.GetStringOrDefault("app.server.port", "3000"),
		ContextPath:     resource.GetStringOrDefault("app.server.context-path", "/api"),
	}
}

// loadDotEnv reads optional .env files (real environment variables win over them)
// and re-applies LOG_LEVEL, which the logger first read before .env was loaded.
func loadDotEnv(filenames ...string) {
	_ = godotenv.Load(filenames...)
	if err := log.SetLevel(os.Getenv("LOG_LEVEL")); err != nil {
		log.Warn(err.Error())
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
