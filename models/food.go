package models

// Food is a catalog entry: nutrients are per single serving.
type Food struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
}

type InsertFood struct {
	Name        string  `json:"name" binding:"required"`
	Calories    int     `json:"calories" binding:"required"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize float64 `json:"servingSize" binding:"required,gt=0"`
	ServingUnit string  `json:"servingUnit" binding:"required"`
}
