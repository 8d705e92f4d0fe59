package weatherapi

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fakhrymubarak/kloudly/internal/model"
)

const (
	units          = "metric"
	reverseLimit   = "1"
	searchLimit    = "5"
	weatherPath    = "weather"
	forecastPath   = "forecast"
	reversePath    = "reverse"
	directGeoPath  = "direct"
	credentialName = "appid"
)

// Config holds the endpoints and credential of the OpenWeatherMap account.
type Config struct {
	BaseURL string // e.g. https://api.openweathermap.org/data/2.5
	GeoURL  string // e.g. https://api.openweathermap.org/geo/1.0
	APIKey  string
}

// WeatherClient is the set of queries the rest of the app relies on.
type WeatherClient interface {
	GetCurrentWeather(ctx context.Context, coords model.Coordinates) (*model.WeatherData, error)
	GetForecast(ctx context.Context, coords model.Coordinates) (*model.ForecastData, error)
	ReverseGeocode(ctx context.Context, coords model.Coordinates) ([]model.GeocodingResponse, error)
	SearchLocations(ctx context.Context, query string) ([]model.GeocodingResponse, error)
}

// Client talks to OpenWeatherMap. It holds no mutable state and is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a Client. No request timeout is set; callers bound latency through ctx.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCurrentWeather returns current conditions at coords in metric units.
func (c *Client) GetCurrentWeather(ctx context.Context, coords model.Coordinates) (*model.WeatherData, error) {
	u := c.createURL(endpoint(c.cfg.BaseURL, weatherPath), coordParams(coords, "units", units))
	var data model.WeatherData
	if err := c.fetchData(ctx, u, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetForecast returns the multi-period forecast at coords in metric units.
func (c *Client) GetForecast(ctx context.Context, coords model.Coordinates) (*model.ForecastData, error) {
	u := c.createURL(endpoint(c.cfg.BaseURL, forecastPath), coordParams(coords, "units", units))
	var data model.ForecastData
	if err := c.fetchData(ctx, u, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ReverseGeocode resolves coords to at most one place.
func (c *Client) ReverseGeocode(ctx context.Context, coords model.Coordinates) ([]model.GeocodingResponse, error) {
	u := c.createURL(endpoint(c.cfg.GeoURL, reversePath), coordParams(coords, "limit", reverseLimit))
	var places []model.GeocodingResponse
	if err := c.fetchData(ctx, u, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// SearchLocations returns up to five places matching query. The query is sent
// unmodified, even when empty; the provider decides whether it is acceptable.
func (c *Client) SearchLocations(ctx context.Context, query string) ([]model.GeocodingResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", searchLimit)
	u := c.createURL(endpoint(c.cfg.GeoURL, directGeoPath), params)
	var places []model.GeocodingResponse
	if err := c.fetchData(ctx, u, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// createURL appends the credential to params and encodes them onto endpoint.
func (c *Client) createURL(endpoint string, params url.Values) string {
	params.Set(credentialName, c.cfg.APIKey)
	return endpoint + "?" + params.Encode()
}

// fetchData performs a single GET and parses the whole body into out.
// Transport, read and parse errors are returned as they are; trailing data after
// the JSON document is a parse error.
func (c *Client) fetchData(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func endpoint(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + path
}

func coordParams(coords model.Coordinates, key, value string) url.Values {
	params := url.Values{}
	params.Set("lat", formatCoord(coords.Lat))
	params.Set("lon", formatCoord(coords.Lon))
	params.Set(key, value)
	return params
}

// formatCoord renders v the way a JS number prints: shortest round-trip digits,
// plain decimal in [1e-6, 1e21) and exponent form outside it (1e-7, 1.5e+21).
func formatCoord(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s // NaN, ±Inf
	}
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
