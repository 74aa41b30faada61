package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mariotoorrees/iPowerLab/config"
	"github.com/mariotoorrees/iPowerLab/models"
	"github.com/mariotoorrees/iPowerLab/storage"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := storage.NewMemStorage()
	store.Seed()
	return SetupRouter(config.Config{Port: "8080", TrendWindowMonths: 3}, store)
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetUser(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodGet, "/api/users/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var u models.User
	if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
		t.Fatal(err)
	}
	if u.Username != "user" {
		t.Errorf("username = %q, want the seeded demo user", u.Username)
	}

	if w := doRequest(r, http.MethodGet, "/api/users/999", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown user status = %d, want 404", w.Code)
	}
}

func TestCreateUserDuplicateUsernameConflicts(t *testing.T) {
	r := newTestRouter()

	dup := `{"username":"user","password":"pw","name":"Dup","email":"d@example.com"}`
	if w := doRequest(r, http.MethodPost, "/api/users", dup); w.Code != http.StatusConflict {
		t.Errorf("duplicate username status = %d, want 409", w.Code)
	}

	fresh := `{"username":"jane","password":"pw","name":"Jane","email":"j@example.com"}`
	w := doRequest(r, http.MethodPost, "/api/users", fresh)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var u models.User
	if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
		t.Fatal(err)
	}
	if u.ID <= 1 {
		t.Errorf("new user id = %d, want one above the seeded user", u.ID)
	}
	if u.CalorieGoal != 2000 {
		t.Errorf("calorie goal default not applied: %d", u.CalorieGoal)
	}
}

func TestUpdateUserPartial(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodPatch, "/api/users/1", `{"useDarkMode":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var u models.User
	if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
		t.Fatal(err)
	}
	if !u.UseDarkMode {
		t.Error("dark mode not updated")
	}
	if u.Name != "John Smith" {
		t.Errorf("untouched field changed: %q", u.Name)
	}

	if w := doRequest(r, http.MethodPatch, "/api/users/999", `{"useDarkMode":true}`); w.Code != http.StatusNotFound {
		t.Errorf("unknown user status = %d, want 404", w.Code)
	}
}

func TestSearchFoods(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodGet, "/api/foods?q=chick", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var foods []models.Food
	if err := json.Unmarshal(w.Body.Bytes(), &foods); err != nil {
		t.Fatal(err)
	}
	if len(foods) != 1 || foods[0].Name != "Grilled Chicken Salad" {
		t.Errorf("search result = %v", foods)
	}

	w = doRequest(r, http.MethodGet, "/api/foods?q=zz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unmatched search status = %d, want 200", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &foods); err != nil {
		t.Fatal(err)
	}
	if len(foods) != 0 {
		t.Errorf("unmatched search should return an empty list, got %v", foods)
	}
}

func TestDailyNutritionEndpoint(t *testing.T) {
	r := newTestRouter()

	// seeded day: oatmeal 220 + chicken salad 420 + apple 80
	w := doRequest(r, http.MethodGet, "/api/users/1/nutrition", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var n models.DailyNutrition
	if err := json.Unmarshal(w.Body.Bytes(), &n); err != nil {
		t.Fatal(err)
	}
	if n.Calories != 720 {
		t.Errorf("calories = %v, want 720", n.Calories)
	}
}

func TestMealLifecycle(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodPost, "/api/meals", `{"userId":1,"foodId":6,"mealType":"dinner","servings":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	var m models.Meal
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatal(err)
	}

	if w := doRequest(r, http.MethodPost, "/api/meals", `{"userId":1,"foodId":999,"mealType":"dinner","servings":1}`); w.Code != http.StatusNotFound {
		t.Errorf("unknown food status = %d, want 404", w.Code)
	}
	if w := doRequest(r, http.MethodPost, "/api/meals", `{"userId":1,"foodId":6,"mealType":"brunch","servings":1}`); w.Code != http.StatusBadRequest {
		t.Errorf("invalid meal type status = %d, want 400", w.Code)
	}

	if w := doRequest(r, http.MethodDelete, "/api/meals/"+strconv.Itoa(m.ID), ""); w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", w.Code)
	}
	if w := doRequest(r, http.MethodDelete, "/api/meals/"+strconv.Itoa(m.ID), ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestChatReturnsMessagePair(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodPost, "/api/chat", `{"userId":1,"content":"hello","isUserMessage":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var pair []models.ChatMessage
	if err := json.Unmarshal(w.Body.Bytes(), &pair); err != nil {
		t.Fatal(err)
	}
	if len(pair) != 2 || !pair[0].IsUserMessage || pair[1].IsUserMessage {
		t.Fatalf("want user message plus assistant reply, got %v", pair)
	}

	// welcome message + the two above
	w = doRequest(r, http.MethodGet, "/api/users/1/chat", "")
	var history []models.ChatMessage
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatal(err)
	}
	if len(history) != 3 {
		t.Errorf("history length = %d, want 3", len(history))
	}
}

func TestWeightTrendEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodGet, "/api/users/1/weights/trend", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var trend struct {
		Weights      []models.Weight `json:"weights"`
		TargetWeight float64         `json:"targetWeight"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &trend); err != nil {
		t.Fatal(err)
	}
	// seed spans 90 days; the 3-month window keeps everything except the
	// oldest entry's exact position is calendar dependent, so only assert
	// ordering and target.
	for i := 1; i < len(trend.Weights); i++ {
		if trend.Weights[i].Date.Before(trend.Weights[i-1].Date) {
			t.Fatal("trend not chronological")
		}
	}
	if trend.TargetWeight != 165 {
		t.Errorf("target weight = %v, want the profile's 165", trend.TargetWeight)
	}
}

func TestDailyProgressEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, http.MethodGet, "/api/users/1/progress", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var progress map[string]map[string]float64
	if err := json.Unmarshal(w.Body.Bytes(), &progress); err != nil {
		t.Fatal(err)
	}
	cal, ok := progress["calories"]
	if !ok {
		t.Fatal("calories entry missing")
	}
	if cal["consumed"] != 720 || cal["goal"] != 2000 {
		t.Errorf("calories progress = %v", cal)
	}
	if cal["percent"] < 0 || cal["percent"] > 1 {
		t.Errorf("percent out of range: %v", cal["percent"])
	}
}
