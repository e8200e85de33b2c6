package soil

import (
	"fmt"
	"strconv"
)

// promptTemplate — часть внешнего контракта: секции Markdown в ответе
// модели повторяют структуру, заданную здесь, и потребители могут на неё
// полагаться.
const promptTemplate = `You are an expert agronomist advising a farmer. Analyze the following soil and environmental measurements for growing %s:

- Temperature: %s °C
- Humidity: %s%%
- Soil Moisture: %s%%
- Nitrogen (N): %s
- Phosphorus (P): %s
- Potassium (K): %s
- Soil pH: %s
- Rainfall: %s mm

Write a Markdown report with exactly these four sections:
1. **Soil Health Status**: a short assessment of the overall soil condition.
2. **Suitability**: whether %s can be grown in these conditions. Answer Yes, No or Marginal.
3. **Recommendations**: 2-3 bullet points with concrete steps to improve yield.
4. **Summary**: one line that wraps up the analysis.`

// BuildPrompt собирает текст запроса к модели из валидного Sample.
// Функция детерминированная: одинаковый Sample даёт байт-в-байт
// одинаковый prompt.
func BuildPrompt(s Sample) string {
	return fmt.Sprintf(promptTemplate,
		s.CropName,
		num(s.Temperature),
		num(s.Humidity),
		num(s.Moisture),
		num(s.Nitrogen),
		num(s.Phosphorus),
		num(s.Potassium),
		num(s.PH),
		num(s.Rainfall),
		s.CropName,
	)
}

// num печатает измерение без экспоненты и хвостовых нулей: 6.5 -> "6.5", 0 -> "0".
func num(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
