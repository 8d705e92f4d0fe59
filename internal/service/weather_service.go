package service

import (
	"context"

	"github.com/fakhrymubarak/kloudly/internal/config"
	"github.com/fakhrymubarak/kloudly/internal/model"
	"github.com/fakhrymubarak/kloudly/internal/weatherapi"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WeatherServiceInterface is what the HTTP handlers depend on.
type WeatherServiceInterface interface {
	CurrentWeather(ctx context.Context, coords model.Coordinates) (*model.WeatherData, error)
	Forecast(ctx context.Context, coords model.Coordinates) (*model.ForecastData, error)
	ReverseGeocode(ctx context.Context, coords model.Coordinates) ([]model.GeocodingResponse, error)
	SearchLocations(ctx context.Context, query string) ([]model.GeocodingResponse, error)
	Overview(ctx context.Context, coords model.Coordinates) (*model.LocationOverview, error)
}

type WeatherService struct {
	Client weatherapi.WeatherClient
	Logger *zap.SugaredLogger
}

// NewWeatherService wires a service around client. Without a client it builds one from config.
func NewWeatherService(client ...weatherapi.WeatherClient) *WeatherService {
	var c weatherapi.WeatherClient
	if len(client) > 0 && client[0] != nil {
		c = client[0]
	} else {
		c = weatherapi.New(config.GetWeatherAPIConfig())
	}
	return &WeatherService{
		Client: c,
		Logger: config.GetLogger(),
	}
}

func (s *WeatherService) CurrentWeather(ctx context.Context, coords model.Coordinates) (*model.WeatherData, error) {
	data, err := s.Client.GetCurrentWeather(ctx, coords)
	if err != nil {
		s.Logger.Errorw("current weather request failed", "lat", coords.Lat, "lon", coords.Lon, "error", err)
		return nil, err
	}
	s.Logger.Debugw("current weather fetched", "lat", coords.Lat, "lon", coords.Lon, "name", data.Name)
	return data, nil
}

func (s *WeatherService) Forecast(ctx context.Context, coords model.Coordinates) (*model.ForecastData, error) {
	data, err := s.Client.GetForecast(ctx, coords)
	if err != nil {
		s.Logger.Errorw("forecast request failed", "lat", coords.Lat, "lon", coords.Lon, "error", err)
		return nil, err
	}
	s.Logger.Debugw("forecast fetched", "lat", coords.Lat, "lon", coords.Lon, "periods", len(data.List))
	return data, nil
}

func (s *WeatherService) ReverseGeocode(ctx context.Context, coords model.Coordinates) ([]model.GeocodingResponse, error) {
	places, err := s.Client.ReverseGeocode(ctx, coords)
	if err != nil {
		s.Logger.Errorw("reverse geocode failed", "lat", coords.Lat, "lon", coords.Lon, "error", err)
		return nil, err
	}
	s.Logger.Debugw("reverse geocode resolved", "lat", coords.Lat, "lon", coords.Lon, "matches", len(places))
	return places, nil
}

func (s *WeatherService) SearchLocations(ctx context.Context, query string) ([]model.GeocodingResponse, error) {
	places, err := s.Client.SearchLocations(ctx, query)
	if err != nil {
		s.Logger.Errorw("location search failed", "query", query, "error", err)
		return nil, err
	}
	s.Logger.Debugw("location search resolved", "query", query, "matches", len(places))
	return places, nil
}

// Overview loads current weather, forecast and place name for coords in parallel.
// The first error cancels the remaining calls and is returned unchanged.
func (s *WeatherService) Overview(ctx context.Context, coords model.Coordinates) (*model.LocationOverview, error) {
	var (
		current  *model.WeatherData
		forecast *model.ForecastData
		places   []model.GeocodingResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		current, err = s.CurrentWeather(gctx, coords)
		return err
	})
	g.Go(func() (err error) {
		forecast, err = s.Forecast(gctx, coords)
		return err
	})
	g.Go(func() (err error) {
		places, err = s.ReverseGeocode(gctx, coords)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := &model.LocationOverview{Current: current, Forecast: forecast}
	if len(places) > 0 {
		overview.Location = &places[0]
	}
	return overview, nil
}
