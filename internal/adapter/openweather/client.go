// Package openweather implements the weather provider port against the
// OpenWeatherMap current-weather API, with a per-city in-process cache used
// as fallback when the live call fails.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"skymemo/internal/domain"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current weather by city. A successful fetch refreshes the
// cache; a failed fetch falls back to the cached observation for the same
// city, and reports domain.ErrWeatherUnavailable when none exists.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	cache map[string]domain.WeatherObservation
}

// Ensure the provider port is met.
var _ domain.WeatherProvider = (*Client)(nil)

// New creates a Client against the public OpenWeatherMap endpoint.
func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, defaultBaseURL)
}

// NewWithBaseURL creates a Client against a custom endpoint, for tests.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   make(map[string]domain.WeatherObservation),
	}
}

// FetchByCity returns the current weather observation for a city, falling
// back to the cache when the live call fails.
func (c *Client) FetchByCity(ctx context.Context, city string) (*domain.WeatherObservation, error) {
	if c.apiKey == "" {
		return c.cached(city)
	}

	obs, err := c.fetch(ctx, city)
	if err != nil {
		return c.cached(city)
	}

	c.mu.Lock()
	c.cache[city] = *obs
	c.mu.Unlock()
	return obs, nil
}

func (c *Client) cached(city string) (*domain.WeatherObservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if obs, ok := c.cache[city]; ok {
		o := obs
		return &o, nil
	}
	return nil, domain.ErrWeatherUnavailable
}

func (c *Client) fetch(ctx context.Context, city string) (*domain.WeatherObservation, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openweather: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("openweather: decode response: %w", err)
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("openweather: response missing weather block")
	}

	return &domain.WeatherObservation{
		Temperature: payload.Main.Temp,
		Description: payload.Weather[0].Description,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}, nil
}
