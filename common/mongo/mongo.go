package mongo

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sunthewhat/cert-studio-api/common"
)

func InitMongo() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	clientOptions := options.Client().ApplyURI(*common.Config.Mongo)
	client, err := mongo.Connect(ctx, clientOptions)

	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	if err := client.Ping(ctx, nil); err != nil {
		slog.Error("Failed to ping MongoDB", "error", err)
		os.Exit(1)
	}

	slog.Info("MongoDB Connected!")

	common.Mongo = client.Database(*common.Config.MongoDatabase)
}
