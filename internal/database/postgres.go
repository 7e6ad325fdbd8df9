package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/viper"
)

// AuditDBConfig holds the connection settings for the audit trail database.
type AuditDBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func GetAuditDBConfig() *AuditDBConfig {
	viper.SetDefault("audit_db.host", "localhost")
	viper.SetDefault("audit_db.port", "5432")
	viper.SetDefault("audit_db.user", "postgres")
	viper.SetDefault("audit_db.password", "password")
	viper.SetDefault("audit_db.name", "admin_dashboard")
	viper.SetDefault("audit_db.ssl_mode", "disable")
	viper.SetDefault("audit_db.max_open_conns", 10)
	viper.SetDefault("audit_db.max_idle_conns", 2)
	viper.SetDefault("audit_db.conn_max_lifetime", 5*time.Minute)

	return &AuditDBConfig{
		Host:            viper.GetString("audit_db.host"),
		Port:            viper.GetString("audit_db.port"),
		User:            viper.GetString("audit_db.user"),
		Password:        viper.GetString("audit_db.password"),
		Name:            viper.GetString("audit_db.name"),
		SSLMode:         viper.GetString("audit_db.ssl_mode"),
		MaxOpenConns:    viper.GetInt("audit_db.max_open_conns"),
		MaxIdleConns:    viper.GetInt("audit_db.max_idle_conns"),
		ConnMaxLifetime: viper.GetDuration("audit_db.conn_max_lifetime"),
	}
}

// InitAuditDB opens the audit trail database. The audit trail is optional
// infrastructure: on failure the server runs without persistence and the
// caller gets nil.
func InitAuditDB() *sql.DB {
	config := GetAuditDBConfig()

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.Name, config.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("[DB] audit database unavailable, continuing without it: %v", err)
		return nil
	}

	if err := db.Ping(); err != nil {
		log.Printf("[DB] audit database unreachable, continuing without it: %v", err)
		db.Close()
		return nil
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)

	log.Println("[DB] audit database connection established")
	return db
}
