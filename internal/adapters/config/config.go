package config

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"

	"github.com/shingu-dev/club-server/internal/adapters/database/mongodb"
	"github.com/shingu-dev/club-server/internal/adapters/database/redis"
	"github.com/shingu-dev/club-server/internal/adapters/logger"
)

type Config struct {
	Database   *mongo.Database
	Redis      *redis.Client
	SMTPDialer *gomail.Dialer
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
}

func Get() *Config {
	initConfig()

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	database, err := mongodb.Connect(ctx,
		viper.GetString("service.database.uri"),
		viper.GetString("service.database.name"),
	)
	if err != nil {
		logger.Log.Panicf("Failed to connect to the database: %v", err)
	} else {
		logger.Log.Info("Successfully connected to the database")
	}

	redisClient, err := redis.New(redis.Options{
		Host:     viper.GetString("service.redis.host"),
		Port:     viper.GetString("service.redis.port"),
		Password: viper.GetString("service.redis.password"),
	})
	if err != nil {
		logger.Log.Panicf("Failed to connect to redis: %v", err)
	} else {
		logger.Log.Info("Successfully connected to redis")
	}

	dialer := gomail.NewDialer(
		viper.GetString("service.smtp.host"),
		viper.GetInt("service.smtp.port"),
		viper.GetString("service.smtp.email"),
		viper.GetString("service.smtp.password"),
	)

	return &Config{
		Database:   database,
		Redis:      redisClient,
		SMTPDialer: dialer,
	}
}

// ListenAddr is the HTTP bind address.
func ListenAddr() string {
	return fmt.Sprintf("%s:%d",
		viper.GetString("service.http.host"),
		viper.GetInt("service.http.port"),
	)
}
