package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"recycle-bot/config"
	telegram "recycle-bot/internal/api"
	"recycle-bot/internal/container"
	"recycle-bot/internal/domain/port"
	"recycle-bot/internal/infrastructure/storage"
	"recycle-bot/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	// Создаём хранилище пользователей
	userRepo := storage.NewMemoryUserRepository()

	// Классификатор необязателен: без модели все фото получают "не уверен"
	var classifier port.ImageClassifier
	if cfg.ModelPath != "" {
		c, err := vision.NewGoCVClassifier(vision.Config{
			ModelPath:  cfg.ModelPath,
			ConfigPath: cfg.ModelConfigPath,
			LabelsPath: cfg.LabelsPath,
			InputSize:  cfg.ModelInputSize,
			SwapRB:     true,
		})
		if err != nil {
			log.Fatalf("Failed to load classifier: %v", err)
		}
		defer c.Close()
		classifier = c
	} else {
		log.Println("MODEL_PATH is not set, image classification is disabled")
	}

	m := cfg.Mapper()
	log.Printf("Confidence threshold: %.2f, rules: %d", m.Threshold(), len(m.Rules()))

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, classifier, m)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Bot is running...")
	if err := bot.Run(ctx); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
	log.Println("Bot stopped")
}
