package model

import "encoding/json"

// Condition is one entry of the "weather" array returned by OpenWeatherMap.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainReadings holds temperature, pressure and humidity values.
type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
	SeaLevel  float64 `json:"sea_level,omitempty"`
	GrndLevel float64 `json:"grnd_level,omitempty"`
	TempKf    float64 `json:"temp_kf,omitempty"`
}

// Wind is speed in m/s and direction in degrees.
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
	Gust  float64 `json:"gust,omitempty"`
}

// Clouds is cloudiness in percent.
type Clouds struct {
	All float64 `json:"all"`
}

// Precipitation holds rain or snow volume in mm for the last 1h/3h.
type Precipitation struct {
	OneHour   float64 `json:"1h,omitempty"`
	ThreeHour float64 `json:"3h,omitempty"`
}

// WeatherSys carries country code and sunrise/sunset times.
type WeatherSys struct {
	Type    int    `json:"type,omitempty"`
	ID      int    `json:"id,omitempty"`
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// WeatherData is the current-conditions document for one coordinate pair.
// A decoded value re-encodes to exactly the bytes it was decoded from.
type WeatherData struct {
	Coord      Coordinates    `json:"coord"`
	Weather    []Condition    `json:"weather"`
	Base       string         `json:"base,omitempty"`
	Main       MainReadings   `json:"main"`
	Visibility float64        `json:"visibility,omitempty"`
	Wind       Wind           `json:"wind"`
	Rain       *Precipitation `json:"rain,omitempty"`
	Snow       *Precipitation `json:"snow,omitempty"`
	Clouds     Clouds         `json:"clouds"`
	Dt         int64          `json:"dt"`
	Sys        WeatherSys     `json:"sys"`
	Timezone   int            `json:"timezone"`
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Cod        int            `json:"cod"`

	raw json.RawMessage
}

// Raw returns the document as received, or nil for a value built in code.
func (w WeatherData) Raw() json.RawMessage {
	return w.raw
}

func (w *WeatherData) UnmarshalJSON(b []byte) error {
	type view WeatherData
	var v view
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*w = WeatherData(v)
	w.raw = keepRaw(b)
	return nil
}

func (w WeatherData) MarshalJSON() ([]byte, error) {
	if w.raw != nil {
		return w.raw, nil
	}
	type view WeatherData
	return json.Marshal(view(w))
}
