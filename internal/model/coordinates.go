package model

// Coordinates is a latitude/longitude pair. Values are passed to the provider as-is.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
