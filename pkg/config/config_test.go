package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN_EncodesCredenciales(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:word/rara",
		DBName:   "portaria",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss:word/rara",
		"los caracteres especiales del password deben ir URL-encoded")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgresql://u:p@db.example.com:5432/portaria?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())

	cfg.DatabaseURL = ""
	assert.Equal(t, cfg.DSN(), cfg.ConnectionString())
}

func TestHTTPAddr(t *testing.T) {
	cfg := HTTPConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}
