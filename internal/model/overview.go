package model

// LocationOverview bundles everything the dashboard shows for one position.
type LocationOverview struct {
	Location *GeocodingResponse `json:"location,omitempty"`
	Current  *WeatherData       `json:"current"`
	Forecast *ForecastData      `json:"forecast"`
}
