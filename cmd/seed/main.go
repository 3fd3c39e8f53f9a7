package main

import (
	"animalquiz/internal/config"
	"animalquiz/internal/logging"
	"animalquiz/internal/model"
	"animalquiz/internal/quiz"
	"animalquiz/internal/repository"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// seed upserts a question bank into MongoDB: QUIZ_BANK_FILE when set,
// otherwise the built-in animal bank.
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, "console")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	mongoURI := cfg.MongoURI
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	var bank *model.Bank
	if cfg.BankFile != "" {
		bank, err = repository.NewFileBankRepo(cfg.BankFile).Get(ctx, "")
		if err != nil {
			logger.Fatal("failed to read bank file", zap.String("file", cfg.BankFile), zap.Error(err))
		}
	} else {
		bank = quiz.DefaultBank()
	}

	repo := repository.NewMongoBankRepo(client.Database(cfg.MongoDB))
	if err := repo.Save(ctx, bank); err != nil {
		logger.Fatal("failed to save bank", zap.Error(err))
	}

	logger.Info("bank seeded",
		zap.String("bank", bank.Name),
		zap.String("db", cfg.MongoDB),
		zap.Int("questions", len(bank.Questions)),
	)
}
