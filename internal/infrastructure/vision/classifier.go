//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"recycle-bot/internal/domain/entity"
)

type GoCVClassifier struct {
	InputSize    int
	Scale        float64
	SwapRB       bool
	MinImageSide int

	labels []string
	mean   gocv.Scalar

	mu  sync.Mutex // gocv.Net не потокобезопасен
	net gocv.Net
}

// NewGoCVClassifier загружает сеть и метки классов.
func NewGoCVClassifier(cfg Config) (*GoCVClassifier, error) {
	cfg = cfg.withDefaults()
	if cfg.ModelPath == "" {
		return nil, errors.New("model path is required")
	}

	labels, err := LoadLabels(cfg.LabelsPath)
	if err != nil {
		return nil, err
	}

	net := gocv.ReadNet(cfg.ModelPath, cfg.ConfigPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load model %s", cfg.ModelPath)
	}

	return &GoCVClassifier{
		InputSize:    cfg.InputSize,
		Scale:        cfg.Scale,
		SwapRB:       cfg.SwapRB,
		MinImageSide: cfg.MinImageSide,
		labels:       labels,
		mean:         gocv.NewScalar(0, 0, 0, 0),
		net:          net,
	}, nil
}

// Classify прогоняет изображение через сеть и возвращает лучший класс.
func (c *GoCVClassifier) Classify(ctx context.Context, imageData []byte) (*entity.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if err := c.checkImageQuality(mat); err != nil {
		return nil, err
	}

	// BlobFromImage сам приводит изображение к размеру входа сети.
	blob := gocv.BlobFromImage(mat, c.Scale, image.Pt(c.InputSize, c.InputSize), c.mean, c.SwapRB, false)
	defer blob.Close()

	scores, err := c.forward(blob)
	if err != nil {
		return nil, err
	}

	idx, confidence, err := TopPrediction(scores)
	if err != nil {
		return nil, err
	}

	return &entity.Prediction{
		Label:      labelFor(c.labels, idx),
		Confidence: confidence,
	}, nil
}

// forward прогоняет blob через сеть и копирует выход под замком:
// выход Forward может разделять память с внутренними буферами сети.
func (c *GoCVClassifier) forward(blob gocv.Mat) ([]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.net.SetInput(blob, "")
	prob := c.net.Forward("")
	defer prob.Close()

	if prob.Empty() {
		return nil, errors.New("empty network output")
	}

	data, err := prob.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("read network output: %w", err)
	}
	return copyScores(data), nil
}

// Close освобождает сеть.
func (c *GoCVClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.net.Close()
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

func (c *GoCVClassifier) checkImageQuality(mat gocv.Mat) error {
	if mat.Empty() {
		return errors.New("quality gate failed: empty image")
	}
	if mat.Cols() < c.MinImageSide || mat.Rows() < c.MinImageSide {
		return fmt.Errorf("quality gate failed: image is too small (%dx%d)", mat.Cols(), mat.Rows())
	}
	return nil
}
