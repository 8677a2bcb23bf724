package entity

import "math"

// Prediction — сырой ответ классификатора изображений.
type Prediction struct {
	Label      string
	Confidence float64
}

// ClassificationResult итог классификации одного снимка.
// Создаётся только маппером: категория всегда выводится из метки и уверенности.
type ClassificationResult struct {
	Category      Category // итоговая корзина
	Confidence    float64  // уверенность в диапазоне [0, 1]
	DetectedLabel string   // метка классификатора или "Error: ..."
}

// ConfidencePercentage возвращает уверенность в процентах с округлением вниз.
// Округление строгое по float64: 0.29 даёт 28, потому что 0.29*100 = 28.999999999999996.
func (r ClassificationResult) ConfidencePercentage() int {
	p := int(math.Floor(r.Confidence * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
