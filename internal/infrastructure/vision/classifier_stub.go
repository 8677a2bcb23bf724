//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"recycle-bot/internal/domain/entity"
)

var errNoGoCV = errors.New("gocv build tag is not enabled")

type GoCVClassifier struct {
	InputSize    int
	Scale        float64
	SwapRB       bool
	MinImageSide int
}

// NewGoCVClassifier создаёт классификатор-заглушку (без OpenCV).
func NewGoCVClassifier(cfg Config) (*GoCVClassifier, error) {
	cfg = cfg.withDefaults()
	return &GoCVClassifier{
		InputSize:    cfg.InputSize,
		Scale:        cfg.Scale,
		SwapRB:       cfg.SwapRB,
		MinImageSide: cfg.MinImageSide,
	}, nil
}

// Classify возвращает ошибку, если сборка без тега gocv.
func (c *GoCVClassifier) Classify(ctx context.Context, imageData []byte) (*entity.Prediction, error) {
	_ = ctx
	_ = imageData
	return nil, errNoGoCV
}

// Close ничего не освобождает в сборке без OpenCV.
func (c *GoCVClassifier) Close() error {
	return nil
}
