package models

// User is the account profile plus the nutrition goals the dashboard
// tracks progress against.
type User struct {
	ID                   int     `json:"id"`
	Username             string  `json:"username"`
	Password             string  `json:"password"`
	Name                 string  `json:"name"`
	Email                string  `json:"email"`
	Weight               float64 `json:"weight"`
	WeightUnit           string  `json:"weightUnit"`
	Height               float64 `json:"height"`
	HeightUnit           string  `json:"heightUnit"`
	Age                  int     `json:"age"`
	ActivityLevel        string  `json:"activityLevel"`
	TargetWeight         float64 `json:"targetWeight"`
	WeeklyGoal           string  `json:"weeklyGoal"`
	CalorieGoal          int     `json:"calorieGoal"`
	ProteinGoal          int     `json:"proteinGoal"`
	CarbsGoal            int     `json:"carbsGoal"`
	FatGoal              int     `json:"fatGoal"`
	UseDarkMode          bool    `json:"useDarkMode"`
	Units                string  `json:"units"`
	NotificationsEnabled bool    `json:"notificationsEnabled"`
}

// InsertUser carries the fields a client may set at registration.
// Boolean preferences are pointers so "not provided" can fall back to
// the catalog defaults instead of false.
type InsertUser struct {
	Username             string  `json:"username" binding:"required"`
	Password             string  `json:"password" binding:"required"`
	Name                 string  `json:"name" binding:"required"`
	Email                string  `json:"email" binding:"required"`
	Weight               float64 `json:"weight"`
	WeightUnit           string  `json:"weightUnit"`
	Height               float64 `json:"height"`
	HeightUnit           string  `json:"heightUnit"`
	Age                  int     `json:"age"`
	ActivityLevel        string  `json:"activityLevel"`
	TargetWeight         float64 `json:"targetWeight"`
	WeeklyGoal           string  `json:"weeklyGoal"`
	CalorieGoal          int     `json:"calorieGoal"`
	ProteinGoal          int     `json:"proteinGoal"`
	CarbsGoal            int     `json:"carbsGoal"`
	FatGoal              int     `json:"fatGoal"`
	UseDarkMode          *bool   `json:"useDarkMode"`
	Units                string  `json:"units"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
}

// UserUpdate is a partial update: only non-nil fields are merged over
// the stored record.
type UserUpdate struct {
	Password             *string  `json:"password"`
	Name                 *string  `json:"name"`
	Email                *string  `json:"email"`
	Weight               *float64 `json:"weight"`
	WeightUnit           *string  `json:"weightUnit"`
	Height               *float64 `json:"height"`
	HeightUnit           *string  `json:"heightUnit"`
	Age                  *int     `json:"age"`
	ActivityLevel        *string  `json:"activityLevel"`
	TargetWeight         *float64 `json:"targetWeight"`
	WeeklyGoal           *string  `json:"weeklyGoal"`
	CalorieGoal          *int     `json:"calorieGoal"`
	ProteinGoal          *int     `json:"proteinGoal"`
	CarbsGoal            *int     `json:"carbsGoal"`
	FatGoal              *int     `json:"fatGoal"`
	UseDarkMode          *bool    `json:"useDarkMode"`
	Units                *string  `json:"units"`
	NotificationsEnabled *bool    `json:"notificationsEnabled"`
}
