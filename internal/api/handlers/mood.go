package handlers

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

// MoodHandler serves synthetic mood analytics. Nothing here is persisted;
// the frontend charts want plausible data until real entry history exists.
type MoodHandler struct{}

func NewMoodHandler() *MoodHandler {
	return &MoodHandler{}
}

type MoodPoint struct {
	Date string `json:"date"`
	Mood int    `json:"mood"`
}

type MoodStats struct {
	Average      float64 `json:"average"`
	Highest      int     `json:"highest"`
	Lowest       int     `json:"lowest"`
	TotalEntries int     `json:"totalEntries"`
	Trend        string  `json:"trend"`
}

func generateMoodData(days int) []MoodPoint {
	data := make([]MoodPoint, 0, days)
	today := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		data = append(data, MoodPoint{
			Date: date.Format("2006-01-02"),
			Mood: rand.Intn(11), // 0-10 scale
		})
	}

	return data
}

func (h *MoodHandler) History(w http.ResponseWriter, r *http.Request) {
	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}

	writeJSON(w, http.StatusOK, generateMoodData(days))
}

func (h *MoodHandler) Stats(w http.ResponseWriter, r *http.Request) {
	data := generateMoodData(30)

	sum, highest, lowest := 0, data[0].Mood, data[0].Mood
	for _, point := range data {
		sum += point.Mood
		if point.Mood > highest {
			highest = point.Mood
		}
		if point.Mood < lowest {
			lowest = point.Mood
		}
	}

	trend := "stable"
	first, last := data[0].Mood, data[len(data)-1].Mood
	switch {
	case last > first:
		trend = "improving"
	case last < first:
		trend = "declining"
	}

	writeJSON(w, http.StatusOK, MoodStats{
		Average:      float64(int(float64(sum)/float64(len(data))*10+0.5)) / 10,
		Highest:      highest,
		Lowest:       lowest,
		TotalEntries: len(data),
		Trend:        trend,
	})
}
