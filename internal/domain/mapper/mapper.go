// Package mapper превращает метку классификатора и уверенность в категорию сортировки.
//
// Маппер не имеет состояния после создания, не делает ввода-вывода и никогда
// не возвращает ошибку: любой вход даёт корректный ClassificationResult.
package mapper

import (
	"math"
	"sort"
	"strings"

	"recycle-bot/internal/domain/entity"
)

// DefaultThreshold порог уверенности по умолчанию
const DefaultThreshold = 0.3

// unknownLabel подставляется вместо пустой метки
const unknownLabel = "unknown"

// Rule связывает ключевое слово с категорией
type Rule struct {
	Keyword  string
	Category entity.Category
}

// Mapper классифицирует метки по порогу уверенности и списку правил
type Mapper struct {
	threshold float64
	rules     []Rule
}

// New создаёт маппер из упорядоченного списка правил.
// Порог прижимается к [0, 1], NaN заменяется на DefaultThreshold. Порог 1
// пропускает только уверенность ровно 1.0, порог 0 пропускает любую.
// Правила для Recyclable всегда проверяются раньше правил Landfill,
// внутри категории порядок сохраняется. Пустые ключевые слова и правила
// с категорией NotSure отбрасываются.
func New(threshold float64, rules []Rule) *Mapper {
	switch {
	case math.IsNaN(threshold):
		threshold = DefaultThreshold
	case threshold < 0:
		threshold = 0
	case threshold > 1:
		threshold = 1
	}

	normalized := make([]Rule, 0, len(rules))
	for _, r := range rules {
		kw := strings.ToLower(strings.TrimSpace(r.Keyword))
		if kw == "" {
			continue
		}
		if r.Category != entity.Recyclable && r.Category != entity.Landfill {
			continue
		}
		normalized = append(normalized, Rule{Keyword: kw, Category: r.Category})
	}
	sort.SliceStable(normalized, func(i, j int) bool {
		return priority(normalized[i].Category) < priority(normalized[j].Category)
	})

	return &Mapper{threshold: threshold, rules: normalized}
}

// NewFromKeywords создаёт маппер из двух списков ключевых слов
func NewFromKeywords(threshold float64, recyclable, landfill []string) *Mapper {
	return New(threshold, RulesFromKeywords(recyclable, landfill))
}

// NewDefault создаёт маппер со встроенными списками и порогом 0.3
func NewDefault() *Mapper {
	return NewFromKeywords(DefaultThreshold, DefaultRecyclableKeywords(), DefaultLandfillKeywords())
}

// RulesFromKeywords собирает правила: сначала перерабатываемое, затем мусор
func RulesFromKeywords(recyclable, landfill []string) []Rule {
	rules := make([]Rule, 0, len(recyclable)+len(landfill))
	for _, kw := range recyclable {
		rules = append(rules, Rule{Keyword: kw, Category: entity.Recyclable})
	}
	for _, kw := range landfill {
		rules = append(rules, Rule{Keyword: kw, Category: entity.Landfill})
	}
	return rules
}

func priority(c entity.Category) int {
	if c == entity.Recyclable {
		return 0
	}
	return 1
}

// Threshold возвращает порог уверенности
func (m *Mapper) Threshold() float64 {
	return m.threshold
}

// Rules возвращает копию правил в порядке проверки
func (m *Mapper) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}

// Keywords возвращает ключевые слова одной категории в порядке проверки
func (m *Mapper) Keywords(c entity.Category) []string {
	var out []string
	for _, r := range m.rules {
		if r.Category == c {
			out = append(out, r.Keyword)
		}
	}
	return out
}

// Match ищет первое правило, ключевое слово которого входит в метку
func (m *Mapper) Match(label string) (Rule, bool) {
	normalized := strings.ToLower(label)
	for _, r := range m.rules {
		if strings.Contains(normalized, r.Keyword) {
			return r, true
		}
	}
	return Rule{}, false
}

// Classify превращает метку и уверенность в результат классификации.
// Уверенность ниже порога, вне [0, 1] или NaN даёт NotSure без поиска ключевых слов.
func (m *Mapper) Classify(label string, confidence float64) entity.ClassificationResult {
	result := entity.ClassificationResult{
		Category:      entity.NotSure,
		Confidence:    clampConfidence(confidence),
		DetectedLabel: label,
	}
	if strings.TrimSpace(label) == "" {
		result.DetectedLabel = unknownLabel
	}

	if !m.accepts(confidence) {
		return result
	}

	if rule, ok := m.Match(label); ok {
		result.Category = rule.Category
	}
	return result
}

func (m *Mapper) accepts(confidence float64) bool {
	if math.IsNaN(confidence) || confidence < 0 || confidence > 1 {
		return false
	}
	return confidence >= m.threshold
}

func clampConfidence(c float64) float64 {
	switch {
	case math.IsNaN(c), c < 0:
		return 0
	case c > 1:
		return 1
	default:
		return c
	}
}
