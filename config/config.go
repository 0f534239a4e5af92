package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"schooldir/consts"
)

// Init Initialize configuration
func Init(configPath string) {
	env := os.Getenv("ENV")
	if env == "" {
		env = "dev"
	}

	viper.SetConfigName("config." + env)
	viper.SetConfigType("toml")

	if configPath != "" {
		viper.AddConfigPath(configPath)
	}
	viper.AddConfigPath("$HOME/.schooldir")
	viper.AddConfigPath("/etc/schooldir")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if parseErr, ok := err.(viper.ConfigParseError); ok {
			logrus.Fatalf("Config file parsing failed: %v", parseErr)
		}
		logrus.Fatalf("Failed to read config file: %v", err)
	}

	logrus.Infof("Config file loaded: %s", viper.ConfigFileUsed())

	// Automatically bind environment variables
	viper.AutomaticEnv()

	setDefaults()

	if err := validate(); err != nil {
		logrus.Fatalf("Configuration validation failed: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("app.env", "dev")
	viper.SetDefault("app.port", "3000")
	viper.SetDefault("database.type", "mysql")
	viper.SetDefault("jwt.expiration_hours", 168)
	viper.SetDefault("pagination.max_limit", 100)
	viper.SetDefault("logging.level", "info")
}

func validate() error {
	required := []string{
		"database.type",
		"jwt.secret",
	}
	for _, key := range required {
		if !viper.IsSet(key) || viper.GetString(key) == "" {
			return fmt.Errorf("missing required config key: %s", key)
		}
	}

	dbType := viper.GetString("database.type")
	if dbType != "mysql" && dbType != "sqlite" {
		return fmt.Errorf("unsupported database.type: %s", dbType)
	}
	return nil
}

// Get Get configuration item value
func Get(key string) any {
	return viper.Get(key)
}

// GetString Get string type configuration item
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt Get integer type configuration item
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool Get boolean type configuration item
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// IsProduction reports whether the app runs in production mode. Error
// envelopes include stack traces only when this is false.
func IsProduction() bool {
	return viper.GetString("app.env") == consts.EnvProduction
}
