package soil

import "errors"

// ErrMissingFields возвращается при неполном наборе измерений.
var ErrMissingFields = errors.New("missing required fields")

// Sample — девять обязательных полей запроса на анализ.
// Числовые поля объявлены указателями: нулевое значение измерения
// валидно, отсутствие поля в JSON — нет.
type Sample struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Moisture    *float64 `json:"moisture"`
	Nitrogen    *float64 `json:"nitrogen"`
	Phosphorus  *float64 `json:"phosphorus"`
	Potassium   *float64 `json:"potassium"`
	PH          *float64 `json:"ph"`
	Rainfall    *float64 `json:"rainfall"`
	CropName    string   `json:"cropName"`
}

// Validate проверяет присутствие всех девяти полей.
func (s Sample) Validate() error {
	measurements := []*float64{
		s.Temperature,
		s.Humidity,
		s.Moisture,
		s.Nitrogen,
		s.Phosphorus,
		s.Potassium,
		s.PH,
		s.Rainfall,
	}
	for _, m := range measurements {
		if m == nil {
			return ErrMissingFields
		}
	}
	if s.CropName == "" {
		return ErrMissingFields
	}
	return nil
}

// AnalysisResult — успешный ответ обработчика.
type AnalysisResult struct {
	Success  bool   `json:"success"`
	Crop     string `json:"crop"`
	Analysis string `json:"analysis"`
}
