package telegram

import (
	"testing"

	"github.com/stretchr/testify/require"

	app "recycle-bot/internal/application"
	"recycle-bot/internal/domain/entity"
	"recycle-bot/internal/domain/mapper"
)

func TestRenderResult_WithKeyword(t *testing.T) {
	out := app.ClassificationOutput{
		Result:  entity.ClassificationResult{Category: entity.Recyclable, Confidence: 0.82, DetectedLabel: "plastic bottle"},
		Rule:    mapper.Rule{Keyword: "bottle", Category: entity.Recyclable},
		Matched: true,
	}

	text := renderResult(out)
	require.Contains(t, text, entity.Recyclable.DisplayName())
	require.Contains(t, text, "plastic bottle")
	require.Contains(t, text, "82%")
	require.Contains(t, text, "Ключевое слово: bottle")
	require.Contains(t, text, entity.Recyclable.Message())
}

func TestRenderResult_NotSure(t *testing.T) {
	out := app.ClassificationOutput{
		Result: entity.ClassificationResult{Category: entity.NotSure, Confidence: 0, DetectedLabel: "Error: model not loaded"},
	}

	text := renderResult(out)
	require.Contains(t, text, entity.NotSure.DisplayName())
	require.Contains(t, text, "0%")
	require.NotContains(t, text, "Ключевое слово")
}

func TestRenderLastResult(t *testing.T) {
	require.Equal(t, msgNoResult, renderLastResult(nil))

	out := &app.ClassificationOutput{
		Result:  entity.ClassificationResult{Category: entity.Landfill, Confidence: 0.95, DetectedLabel: "banana"},
		Rule:    mapper.Rule{Keyword: "banana", Category: entity.Landfill},
		Matched: true,
	}
	text := renderLastResult(out)
	require.Contains(t, text, "Последний результат")
	require.Contains(t, text, "banana")
	require.Contains(t, text, "95%")
	require.Contains(t, text, "Ключевое слово: banana")
}

func TestRenderRules(t *testing.T) {
	text := renderRules(mapper.NewFromKeywords(0.3, []string{"bottle", "can"}, nil))
	require.Contains(t, text, "30%")
	require.Contains(t, text, "bottle, can")
	require.Contains(t, text, entity.Landfill.DisplayName()+": —")
}

func TestRenderRules_SingleCategory(t *testing.T) {
	m := mapper.NewFromKeywords(0.5, []string{"bottle"}, []string{"banana"})

	categories, err := parseRulesArgs(" Landfill ")
	require.NoError(t, err)

	text := renderRules(m, categories...)
	require.Contains(t, text, "50%")
	require.Contains(t, text, entity.Landfill.DisplayName()+": banana")
	require.NotContains(t, text, "bottle")
}

func TestParseRulesArgs(t *testing.T) {
	categories, err := parseRulesArgs("")
	require.NoError(t, err)
	require.Empty(t, categories)

	categories, err = parseRulesArgs("recyclable")
	require.NoError(t, err)
	require.Equal(t, []entity.Category{entity.Recyclable}, categories)

	_, err = parseRulesArgs("compost")
	require.Error(t, err)
}
