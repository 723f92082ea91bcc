package database

import (
	"context"
	"time"

	"lumibelle/config"
	"lumibelle/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// DatabaseName is the Mongo database all repositories operate on.
const DatabaseName = "lumibelle"

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the connection with a ping.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		utils.GetLogger().Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		utils.GetLogger().Fatal("failed to ping MongoDB", zap.Error(err))
	}
	MongoClient = client
	utils.GetLogger().Info("connected to MongoDB",
		zap.String("database", DatabaseName))
}
