package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mariotoorrees/iPowerLab/config"
	"github.com/mariotoorrees/iPowerLab/controllers"
	"github.com/mariotoorrees/iPowerLab/services"
	"github.com/mariotoorrees/iPowerLab/storage"
)

// SetupRouter wires services and controllers over the given store.
// The store is injected rather than ambient so tests can run against
// isolated instances.
func SetupRouter(cfg config.Config, store storage.Storage) *gin.Engine {
	hub := services.NewRealtimeHub()

	userSvc := services.NewUserService(store)
	weightSvc := services.NewWeightService(store, cfg.TrendWindowMonths)
	foodSvc := services.NewFoodService(store)
	mealSvc := services.NewMealService(store)
	progressSvc := services.NewProgressService(store, mealSvc)
	chatSvc := services.NewChatService(store, services.NewNutritionist(), hub)

	uc := controllers.NewUserController(userSvc)
	wc := controllers.NewWeightController(weightSvc)
	fc := controllers.NewFoodController(foodSvc)
	mc := controllers.NewMealController(mealSvc, progressSvc)
	cc := controllers.NewChatController(chatSvc)
	rc := controllers.NewRealtimeController(hub)

	r := gin.Default()

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("/:id", uc.GetUser)
			users.PATCH("/:id", uc.UpdateUser)
			users.GET("/:id/bmi", uc.GetBMI)
			users.GET("/:id/weights", wc.ListWeights)
			users.GET("/:id/weights/trend", wc.WeightTrend)
			users.GET("/:id/meals", mc.ListMeals)
			users.GET("/:id/meals/type/:mealType", mc.ListMealsByType)
			users.GET("/:id/nutrition", mc.GetDailyNutrition)
			users.GET("/:id/progress", mc.GetDailyProgress)
			users.GET("/:id/chat", cc.ListMessages)
		}
		api.POST("/users", uc.CreateUser)
		api.POST("/weights", wc.AddWeight)

		api.GET("/foods", fc.SearchFoods)
		api.GET("/foods/:id", fc.GetFood)
		api.POST("/foods", fc.AddFood)

		api.POST("/meals", mc.AddMeal)
		api.DELETE("/meals/:id", mc.RemoveMeal)

		api.POST("/chat", cc.PostMessage)
	}

	r.GET("/ws/chat", rc.ChatWS)

	return r
}
