package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"recycle-bot/internal/domain/mapper"
)

type Config struct {
	TelegramToken string

	ConfidenceThreshold float64
	RecyclableKeywords  []string
	LandfillKeywords    []string

	ModelPath       string
	ModelConfigPath string
	LabelsPath      string
	ModelInputSize  int
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:       os.Getenv("TELEGRAM_TOKEN"),
		ConfidenceThreshold: mapper.DefaultThreshold,
		RecyclableKeywords:  mapper.DefaultRecyclableKeywords(),
		LandfillKeywords:    mapper.DefaultLandfillKeywords(),
		ModelPath:           os.Getenv("MODEL_PATH"),
		ModelConfigPath:     os.Getenv("MODEL_CONFIG_PATH"),
		LabelsPath:          os.Getenv("LABELS_PATH"),
		ModelInputSize:      224,
	}

	if v := os.Getenv("CONFIDENCE_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse CONFIDENCE_THRESHOLD: %w", err)
		}
		if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
			return nil, fmt.Errorf("CONFIDENCE_THRESHOLD must be within [0, 1], got %v", threshold)
		}
		cfg.ConfidenceThreshold = threshold
	}

	if v, ok := os.LookupEnv("RECYCLABLE_KEYWORDS"); ok {
		cfg.RecyclableKeywords = splitList(v)
	}
	if v, ok := os.LookupEnv("LANDFILL_KEYWORDS"); ok {
		cfg.LandfillKeywords = splitList(v)
	}

	if v := os.Getenv("MODEL_INPUT_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse MODEL_INPUT_SIZE: %w", err)
		}
		if size <= 0 {
			return nil, fmt.Errorf("MODEL_INPUT_SIZE must be positive, got %d", size)
		}
		cfg.ModelInputSize = size
	}

	if cfg.ModelPath != "" && cfg.LabelsPath == "" {
		return nil, fmt.Errorf("LABELS_PATH is required when MODEL_PATH is set")
	}

	return cfg, nil
}

// Mapper собирает маппер категорий из настроек
func (c *Config) Mapper() *mapper.Mapper {
	return mapper.NewFromKeywords(c.ConfidenceThreshold, c.RecyclableKeywords, c.LandfillKeywords)
}

// splitList разбирает список через запятую, пустые элементы отбрасываются
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
