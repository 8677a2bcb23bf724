package mapper

// Встроенные списки для воркшопа. В боевом запуске их переопределяют
// переменные окружения RECYCLABLE_KEYWORDS и LANDFILL_KEYWORDS.

var defaultRecyclable = []string{
	"bottle",
	"can",
	"jar",
	"paper",
	"cardboard",
	"carton",
	"container",
	"aluminum",
	"glass",
	"tin",
	"steel",
	"newspaper",
	"magazine",
	"envelope",
	"box",
	"jug",
}

var defaultLandfill = []string{
	"banana",
	"food",
	"plastic bag",
	"styrofoam",
	"diaper",
	"greasy",
	"napkin",
	"tissue",
	"straw",
	"wrapper",
	"chip bag",
	"cigarette",
	"sponge",
	"toothbrush",
}

// DefaultRecyclableKeywords возвращает копию встроенного списка перерабатываемого
func DefaultRecyclableKeywords() []string {
	return append([]string(nil), defaultRecyclable...)
}

// DefaultLandfillKeywords возвращает копию встроенного списка мусора
func DefaultLandfillKeywords() []string {
	return append([]string(nil), defaultLandfill...)
}
