package vision

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// ParseLabels читает список классов модели: одна метка на строку.
// Пустые строки и комментарии (#) пропускаются, ImageNet-префикс вида
// "n01440764 " отрезается.
func ParseLabels(r io.Reader) ([]string, error) {
	var labels []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		labels = append(labels, stripSynsetID(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	if len(labels) == 0 {
		return nil, errors.New("labels file is empty")
	}
	return labels, nil
}

// LoadLabels читает список классов из файла
func LoadLabels(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open labels: %w", err)
	}
	defer f.Close()

	return ParseLabels(f)
}

func stripSynsetID(line string) string {
	id, rest, ok := strings.Cut(line, " ")
	if !ok || len(id) != 9 || id[0] != 'n' {
		return line
	}
	for _, ch := range id[1:] {
		if ch < '0' || ch > '9' {
			return line
		}
	}
	return strings.TrimSpace(rest)
}

// TopPrediction возвращает индекс лучшего класса и его вероятность.
// Если выход сети не похож на распределение вероятностей, применяется softmax.
func TopPrediction(scores []float32) (int, float64, error) {
	if len(scores) == 0 {
		return 0, 0, errors.New("empty network output")
	}

	best := 0
	sum := 0.0
	normalized := true
	for i, s := range scores {
		v := float64(s)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, fmt.Errorf("invalid score at index %d", i)
		}
		if v < 0 || v > 1 {
			normalized = false
		}
		sum += v
		if s > scores[best] {
			best = i
		}
	}
	if normalized && math.Abs(sum-1) < 1e-3 {
		return best, float64(scores[best]), nil
	}

	// softmax со сдвигом на максимум для устойчивости
	maxScore := float64(scores[best])
	total := 0.0
	for _, s := range scores {
		total += math.Exp(float64(s) - maxScore)
	}
	return best, 1 / total, nil
}

// copyScores отвязывает выход сети от памяти gocv.Mat
func copyScores(data []float32) []float32 {
	out := make([]float32, len(data))
	copy(out, data)
	return out
}

// labelFor возвращает метку класса или запасное имя для индекса вне списка
func labelFor(labels []string, idx int) string {
	if idx >= 0 && idx < len(labels) {
		return labels[idx]
	}
	return fmt.Sprintf("class %d", idx)
}
