package port

import (
	"context"

	"recycle-bot/internal/domain/entity"
)

// ImageClassifier интерфейс классификатора изображений
type ImageClassifier interface {
	// Classify распознаёт предмет на изображении и возвращает метку с уверенностью
	Classify(ctx context.Context, imageData []byte) (*entity.Prediction, error)
}
