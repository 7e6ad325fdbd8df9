// Package config wires viper to the process environment. Everything is
// read through viper keys; this just binds the .env / environment names.
package config

import (
	"log"

	"github.com/spf13/viper"
)

func Init() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.BindEnv("server.port", "PORT")

	viper.BindEnv("core_api.base_url", "CORE_API_URL")
	viper.BindEnv("core_api.timeout", "CORE_API_TIMEOUT")

	viper.BindEnv("session.secret_key", "SESSION_SECRET_KEY")
	viper.BindEnv("session.expiry_hours", "SESSION_EXPIRY_HOURS")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.BindEnv("audit_db.host", "AUDIT_DB_HOST")
	viper.BindEnv("audit_db.port", "AUDIT_DB_PORT")
	viper.BindEnv("audit_db.user", "AUDIT_DB_USER")
	viper.BindEnv("audit_db.password", "AUDIT_DB_PASSWORD")
	viper.BindEnv("audit_db.name", "AUDIT_DB_NAME")
	viper.BindEnv("audit_db.ssl_mode", "AUDIT_DB_SSL_MODE")

	viper.SetDefault("server.port", "8090")
	viper.SetDefault("core_api.base_url", "http://localhost:3000/api")
	viper.SetDefault("core_api.timeout", "30s")
	viper.SetDefault("session.expiry_hours", 24)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("audit_db.host", "localhost")
	viper.SetDefault("audit_db.port", "5432")
	viper.SetDefault("audit_db.ssl_mode", "disable")

	viper.SetDefault("argon2.salt_length", 16)
	viper.SetDefault("argon2.time", 1)
	viper.SetDefault("argon2.memory", 64*1024)
	viper.SetDefault("argon2.threads", 4)
	viper.SetDefault("argon2.key_length", 32)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("[CONFIG] no .env file found, using environment and defaults: %v", err)
	}
}
