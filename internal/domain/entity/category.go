package entity

import "fmt"

// Category корзина, в которую попадает распознанный предмет
type Category int

const (
	NotSure    Category = iota // Не удалось определить
	Recyclable                 // Можно сдать в переработку
	Landfill                   // В обычный мусор
)

// categoryView набор атрибутов для отображения категории
type categoryView struct {
	id      string
	name    string
	color   string
	emoji   string
	message string
}

var categoryViews = map[Category]categoryView{
	Recyclable: {
		id:      "recyclable",
		name:    "Перерабатываемое",
		color:   "green",
		emoji:   "♻️",
		message: "Сполосните и положите в контейнер для вторсырья.",
	},
	Landfill: {
		id:      "landfill",
		name:    "Обычный мусор",
		color:   "red",
		emoji:   "🗑",
		message: "Это не перерабатывается, выбросьте в общий контейнер.",
	},
	NotSure: {
		id:      "not_sure",
		name:    "Не уверен",
		color:   "orange",
		emoji:   "❓",
		message: "Не получилось распознать. Уточните правила сортировки в вашем районе.",
	},
}

func (c Category) view() categoryView {
	if v, ok := categoryViews[c]; ok {
		return v
	}
	return categoryViews[NotSure]
}

// String возвращает стабильный идентификатор категории
func (c Category) String() string { return c.view().id }

// DisplayName возвращает название категории для пользователя
func (c Category) DisplayName() string { return c.view().name }

// Color возвращает цветовой токен интерфейса
func (c Category) Color() string { return c.view().color }

// Emoji возвращает значок категории для чата
func (c Category) Emoji() string { return c.view().emoji }

// Message возвращает подсказку, что делать с предметом
func (c Category) Message() string { return c.view().message }

// Categories возвращает все категории в порядке отображения
func Categories() []Category {
	return []Category{Recyclable, Landfill, NotSure}
}

// ParseCategory разбирает идентификатор категории
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, nil
		}
	}
	return NotSure, fmt.Errorf("unknown category %q", s)
}
