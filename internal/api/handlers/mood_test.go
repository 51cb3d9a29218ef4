package handlers_test

import (
	"net/http"
	"testing"

	"github.com/moodgarden/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodHandler_History(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("requires token", func(t *testing.T) {
		resp := doAuthed(t, http.MethodGet, ts.URL("/api/mood-history"), "", nil)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("default window is seven days", func(t *testing.T) {
		resp := doAuthed(t, http.MethodGet, ts.URL("/api/mood-history"), token, nil)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var points []struct {
			Date string `json:"date"`
			Mood int    `json:"mood"`
		}
		testutil.AssertJSONResponse(t, resp, &points)
		require.Len(t, points, 7)
		for _, point := range points {
			assert.NotEmpty(t, point.Date)
			assert.GreaterOrEqual(t, point.Mood, 0)
			assert.LessOrEqual(t, point.Mood, 10)
		}
	})

	t.Run("honors the days parameter", func(t *testing.T) {
		resp := doAuthed(t, http.MethodGet, ts.URL("/api/mood-history?days=30"), token, nil)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var points []struct {
			Date string `json:"date"`
			Mood int    `json:"mood"`
		}
		testutil.AssertJSONResponse(t, resp, &points)
		assert.Len(t, points, 30)
	})
}

func TestMoodHandler_Stats(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	resp := doAuthed(t, http.MethodGet, ts.URL("/api/mood-stats"), token, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		Average      float64 `json:"average"`
		Highest      int     `json:"highest"`
		Lowest       int     `json:"lowest"`
		TotalEntries int     `json:"totalEntries"`
		Trend        string  `json:"trend"`
	}
	testutil.AssertJSONResponse(t, resp, &stats)
	assert.Equal(t, 30, stats.TotalEntries)
	assert.GreaterOrEqual(t, stats.Highest, stats.Lowest)
	assert.Contains(t, []string{"improving", "declining", "stable"}, stats.Trend)
}
