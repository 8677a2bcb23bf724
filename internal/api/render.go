package telegram

import (
	"fmt"
	"strings"

	app "recycle-bot/internal/application"
	"recycle-bot/internal/domain/entity"
	"recycle-bot/internal/domain/mapper"
)

// renderResult формирует ответ с результатом классификации
func renderResult(out app.ClassificationOutput) string {
	res := out.Result
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", res.Category.Emoji(), res.Category.DisplayName())
	fmt.Fprintf(&b, "🔎 Распознано: %s\n", res.DetectedLabel)
	fmt.Fprintf(&b, "📊 Уверенность: %d%%\n", res.ConfidencePercentage())
	if out.Matched {
		fmt.Fprintf(&b, "🔑 Ключевое слово: %s\n", out.Rule.Keyword)
	}
	fmt.Fprintf(&b, "\n💡 %s", res.Category.Message())

	return b.String()
}

// renderLastResult формирует ответ на /last
func renderLastResult(out *app.ClassificationOutput) string {
	if out == nil {
		return msgNoResult
	}
	return "🕘 Последний результат:\n\n" + renderResult(*out)
}

// renderRules показывает текущий порог и списки ключевых слов.
// Без категорий выводятся обе корзины с ключевыми словами.
func renderRules(m *mapper.Mapper, categories ...entity.Category) string {
	if len(categories) == 0 {
		categories = []entity.Category{entity.Recyclable, entity.Landfill}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "⚙️ Порог уверенности: %d%%\n", int(m.Threshold()*100+0.5))
	for _, c := range categories {
		keywords := m.Keywords(c)
		list := "—"
		if len(keywords) > 0 {
			list = strings.Join(keywords, ", ")
		}
		fmt.Fprintf(&b, "\n%s %s: %s\n", c.Emoji(), c.DisplayName(), list)
	}
	b.WriteString("\nСначала проверяются слова для переработки, затем для мусора.")

	return b.String()
}

// parseRulesArgs разбирает аргумент /rules: пусто или идентификатор категории
func parseRulesArgs(args string) ([]entity.Category, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return nil, nil
	}
	c, err := entity.ParseCategory(strings.ToLower(args))
	if err != nil {
		return nil, err
	}
	return []entity.Category{c}, nil
}
