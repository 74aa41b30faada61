package services

import (
	"testing"
	"time"

	"github.com/mariotoorrees/iPowerLab/models"
	"github.com/mariotoorrees/iPowerLab/storage"
)

func TestTrendWindowBoundaryInclusive(t *testing.T) {
	store := storage.NewMemStorage()
	user := store.CreateUser(models.InsertUser{Username: "u", Password: "pw", Name: "U", Email: "u@x", TargetWeight: 165})
	svc := NewWeightService(store, 3)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	atCutoff := now.AddDate(0, -3, 0)
	justBefore := atCutoff.Add(-time.Second)
	inside := now.AddDate(0, -1, 0)

	store.AddWeight(models.InsertWeight{UserID: user.ID, Weight: 180, Date: &justBefore})
	store.AddWeight(models.InsertWeight{UserID: user.ID, Weight: 175, Date: &atCutoff})
	store.AddWeight(models.InsertWeight{UserID: user.ID, Weight: 170, Date: &inside})

	trend, ok := svc.Trend(user.ID, now)
	if !ok {
		t.Fatal("trend reported missing user")
	}
	if len(trend.Weights) != 2 {
		t.Fatalf("want 2 weights in window, got %d", len(trend.Weights))
	}
	if trend.Weights[0].Weight != 175 {
		t.Errorf("entry exactly at the cutoff must be included first, got %v", trend.Weights[0].Weight)
	}
	if trend.TargetWeight != 165 {
		t.Errorf("target weight = %v, want 165", trend.TargetWeight)
	}
	if trend.WindowMonths != 3 {
		t.Errorf("window months = %d, want 3", trend.WindowMonths)
	}
}

func TestTrendSortsAscending(t *testing.T) {
	store := storage.NewMemStorage()
	user := store.CreateUser(models.InsertUser{Username: "u", Password: "pw", Name: "U", Email: "u@x"})
	svc := NewWeightService(store, 3)

	now := time.Now()
	for _, daysAgo := range []int{10, 40, 25} {
		d := now.AddDate(0, 0, -daysAgo)
		store.AddWeight(models.InsertWeight{UserID: user.ID, Weight: float64(100 + daysAgo), Date: &d})
	}

	trend, _ := svc.Trend(user.ID, now)
	for i := 1; i < len(trend.Weights); i++ {
		if trend.Weights[i].Date.Before(trend.Weights[i-1].Date) {
			t.Fatal("trend not in chronological order")
		}
	}
}

func TestTrendEmptyHistory(t *testing.T) {
	store := storage.NewMemStorage()
	user := store.CreateUser(models.InsertUser{Username: "u", Password: "pw", Name: "U", Email: "u@x"})
	svc := NewWeightService(store, 3)

	trend, ok := svc.Trend(user.ID, time.Now())
	if !ok {
		t.Fatal("trend reported missing user")
	}
	if len(trend.Weights) != 0 {
		t.Fatalf("empty history should give an empty series, got %v", trend.Weights)
	}

	if _, ok := svc.Trend(999, time.Now()); ok {
		t.Fatal("trend for unknown user should report absent")
	}
}
