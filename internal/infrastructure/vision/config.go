package vision

// Config параметры модели классификации
type Config struct {
	ModelPath    string  // веса сети (onnx, caffemodel, pb)
	ConfigPath   string  // описание сети, если формат его требует
	LabelsPath   string  // файл с метками классов
	InputSize    int     // сторона квадратного входа сети
	Scale        float64 // множитель пикселей при сборке blob
	SwapRB       bool    // BGR -> RGB
	MinImageSide int     // минимальная сторона входного изображения
}

func (c Config) withDefaults() Config {
	if c.InputSize <= 0 {
		c.InputSize = 224
	}
	if c.Scale == 0 {
		c.Scale = 1.0 / 255.0
	}
	if c.MinImageSide <= 0 {
		c.MinImageSide = 32
	}
	return c
}
