package models

// DailyNutrition is a derived per-day aggregate; it is recomputed from
// the current meal and food state on every read, never stored.
type DailyNutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
