package biz

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kart-io/logger"

	"github.com/kart-io/hr-center/internal/hrserver/store"
	"github.com/kart-io/hr-center/internal/model"
	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/options/weather"
	"github.com/kart-io/hr-center/pkg/utils/httpclient"
)

// LocationWeather is the current weather at an office location, together
// with how many active employees work there.
type LocationWeather struct {
	ID            string  `json:"id"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Temp          float64 `json:"temp"`
	Weather       string  `json:"weather"`
	WindSpeed     float64 `json:"windSpeed"`
	Humidity      int     `json:"humidity"`
	Pressure      int     `json:"pressure"`
	Icon          string  `json:"icon"`
	EmployeeCount int     `json:"employeeCount"`
}

// owmResponse is the subset of the OpenWeatherMap current weather payload
// that the report consumes.
type owmResponse struct {
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
		Pressure int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// WeatherService reports current weather for the locations where
// employees are based.
type WeatherService struct {
	store  store.Factory
	client *httpclient.Client
	opts   *weather.Options
}

// NewWeatherService creates a new WeatherService.
func NewWeatherService(store store.Factory, opts *weather.Options) *WeatherService {
	return &WeatherService{
		store:  store,
		client: httpclient.NewClient(opts.Timeout, opts.MaxRetries),
		opts:   opts,
	}
}

// Report returns weather for every location that has at least one
// employee. No employees or no locations means an empty report, not an
// error.
func (s *WeatherService) Report(ctx context.Context) ([]*LocationWeather, error) {
	employees, err := s.store.Employees().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return []*LocationWeather{}, nil
	}

	counts := make(map[string]int)
	for _, e := range employees {
		if e.LocationID != "" {
			counts[e.LocationID]++
		}
	}
	if len(counts) == 0 {
		return []*LocationWeather{}, nil
	}

	locations, err := s.store.Locations().List(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]*LocationWeather, 0, len(counts))
	for _, loc := range locations {
		count, ok := counts[loc.ID]
		if !ok {
			continue
		}
		conditions, err := s.fetch(ctx, loc)
		if err != nil {
			return nil, err
		}
		conditions.EmployeeCount = count
		report = append(report, conditions)
	}
	return report, nil
}

func (s *WeatherService) fetch(ctx context.Context, loc *model.Location) (*LocationWeather, error) {
	if s.opts.APIKey == "" {
		return nil, errors.ErrWeatherUpstream.WithMessage("weather api key is not configured")
	}

	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s,%s", loc.City, loc.Country))
	query.Set("appid", s.opts.APIKey)
	query.Set("units", "metric")
	endpoint := fmt.Sprintf("%s/weather?%s", s.opts.BaseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.ErrWeatherUpstream.WithCause(err)
	}

	var payload owmResponse
	if err := s.client.DoJSON(req, &payload); err != nil {
		logger.Errorw("weather provider request failed",
			"city", loc.City,
			"country", loc.Country,
			"error", err,
		)
		return nil, errors.ErrWeatherUpstream.WithCause(err)
	}

	conditions := &LocationWeather{
		ID:        loc.ID,
		City:      loc.City,
		Country:   loc.Country,
		Temp:      payload.Main.Temp,
		Humidity:  payload.Main.Humidity,
		Pressure:  payload.Main.Pressure,
		WindSpeed: payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		conditions.Weather = payload.Weather[0].Description
		conditions.Icon = payload.Weather[0].Icon
	}
	return conditions, nil
}
