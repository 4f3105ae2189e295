package biz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/options/weather"
)

func newWeatherOptions(baseURL string) *weather.Options {
	return &weather.Options{
		APIKey:     "test-key",
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
		MaxRetries: 0,
	}
}

func TestWeatherService_Report(t *testing.T) {
	var gotQueries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/weather", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("appid"))
		require.Equal(t, "metric", r.URL.Query().Get("units"))
		gotQueries = append(gotQueries, r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"weather": [{"description": "clear sky", "icon": "01d"}],
			"main": {"temp": 21.5, "humidity": 40, "pressure": 1015},
			"wind": {"speed": 3.2}
		}`))
	}))
	defer server.Close()

	f := newFakeFactory()
	seedLocation(t, f, "loc1", "London", "GB")
	seedLocation(t, f, "loc2", "Paris", "FR")
	seedEmployee(t, f, "e1", "p1", "loc1")
	seedEmployee(t, f, "e2", "p2", "loc1")

	svc := NewWeatherService(f, newWeatherOptions(server.URL))
	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	// Only the location with employees is reported.
	require.Len(t, report, 1)
	assert.Equal(t, []string{"London,GB"}, gotQueries)

	entry := report[0]
	assert.Equal(t, "loc1", entry.ID)
	assert.Equal(t, "clear sky", entry.Weather)
	assert.Equal(t, "01d", entry.Icon)
	assert.Equal(t, 21.5, entry.Temp)
	assert.Equal(t, 40, entry.Humidity)
	assert.Equal(t, 1015, entry.Pressure)
	assert.Equal(t, 3.2, entry.WindSpeed)
	assert.Equal(t, 2, entry.EmployeeCount)
}

func TestWeatherService_Report_NoEmployees(t *testing.T) {
	f := newFakeFactory()
	seedLocation(t, f, "loc1", "London", "GB")

	svc := NewWeatherService(f, newWeatherOptions("http://127.0.0.1:0"))
	report, err := svc.Report(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, report)
	assert.Empty(t, report)
}

func TestWeatherService_Report_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":401,"message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	f := newFakeFactory()
	seedLocation(t, f, "loc1", "London", "GB")
	seedEmployee(t, f, "e1", "p1", "loc1")

	svc := NewWeatherService(f, newWeatherOptions(server.URL))
	_, err := svc.Report(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrWeatherUpstream.Code))
}

func TestWeatherService_Report_MissingAPIKey(t *testing.T) {
	f := newFakeFactory()
	seedLocation(t, f, "loc1", "London", "GB")
	seedEmployee(t, f, "e1", "p1", "loc1")

	opts := newWeatherOptions("http://127.0.0.1:0")
	opts.APIKey = ""
	svc := NewWeatherService(f, opts)

	_, err := svc.Report(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrWeatherUpstream.Code))
}
