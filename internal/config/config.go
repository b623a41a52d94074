// Package config reads settings from the environment. A .env file in the
// working directory is loaded first.
package config

import (
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

const (
	DriverSqlite = "sqlite"
	DriverRedis  = "redis"
)

type Config struct {
	Port          string
	DBPath        string
	StoreDriver   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ContentFile   string
	LogLevel      string
}

// FromEnv reads the environment, filling defaults for unset values.
func FromEnv() Config {
	c := Config{
		Port:          os.Getenv("PORT"),
		DBPath:        os.Getenv("DB_PATH"),
		StoreDriver:   os.Getenv("STORE_DRIVER"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		ContentFile:   os.Getenv("CONTENT_FILE"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}

	if c.Port == "" {
		c.Port = "8080"
	}
	if c.DBPath == "" {
		c.DBPath = "portfolio.db"
	}
	if c.StoreDriver == "" {
		c.StoreDriver = DriverSqlite
	}
	if c.RedisAddr == "" {
		c.RedisAddr = "localhost:6379"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			logrus.Warnf("Ignoring invalid REDIS_DB %q", v)
		} else {
			c.RedisDB = n
		}
	}
	return c
}
