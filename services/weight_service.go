package services

import (
	"sort"
	"time"

	"github.com/mariotoorrees/iPowerLab/models"
	"github.com/mariotoorrees/iPowerLab/storage"
	"github.com/mariotoorrees/iPowerLab/utils"
)

// WeightService serves the weigh-in log and the chart's trailing-window
// trend view. The window length is configuration, not a literal.
type WeightService struct {
	store        storage.Storage
	windowMonths int
}

func NewWeightService(store storage.Storage, windowMonths int) *WeightService {
	return &WeightService{store: store, windowMonths: windowMonths}
}

func (s *WeightService) List(userID, limit int) []models.Weight {
	return s.store.GetWeights(userID, limit)
}

func (s *WeightService) Add(in models.InsertWeight) models.Weight {
	return s.store.AddWeight(in)
}

// WeightTrend is the chart payload: the trailing window of weigh-ins in
// chronological order plus the profile's target weight.
type WeightTrend struct {
	Weights      []models.Weight `json:"weights"`
	TargetWeight float64         `json:"targetWeight"`
	WindowMonths int             `json:"windowMonths"`
}

// Trend keeps weigh-ins dated at or after now minus the configured
// number of months (boundary inclusive) and sorts them ascending for
// chronological rendering. Empty input yields an empty series.
func (s *WeightService) Trend(userID int, now time.Time) (WeightTrend, bool) {
	user, ok := s.store.GetUser(userID)
	if !ok {
		return WeightTrend{}, false
	}

	cutoff := utils.TrailingCutoff(now, s.windowMonths)
	all := s.store.GetWeights(userID, 0)

	windowed := make([]models.Weight, 0, len(all))
	for _, w := range all {
		if utils.InTrailingWindow(w.Date, cutoff) {
			windowed = append(windowed, w)
		}
	}
	sort.Slice(windowed, func(i, j int) bool { return windowed[i].Date.Before(windowed[j].Date) })

	return WeightTrend{
		Weights:      windowed,
		TargetWeight: user.TargetWeight,
		WindowMonths: s.windowMonths,
	}, true
}
