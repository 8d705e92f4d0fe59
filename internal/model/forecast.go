package model

import "encoding/json"

// ForecastSys tells whether a step falls in the day ("d") or night ("n").
type ForecastSys struct {
	Pod string `json:"pod"`
}

// ForecastItem is a single 3-hour step of the forecast.
type ForecastItem struct {
	Dt         int64          `json:"dt"`
	Main       MainReadings   `json:"main"`
	Weather    []Condition    `json:"weather"`
	Clouds     Clouds         `json:"clouds"`
	Wind       Wind           `json:"wind"`
	Visibility float64        `json:"visibility,omitempty"`
	Pop        float64        `json:"pop"`
	Rain       *Precipitation `json:"rain,omitempty"`
	Snow       *Precipitation `json:"snow,omitempty"`
	Sys        ForecastSys    `json:"sys"`
	DtTxt      string         `json:"dt_txt"`
}

// ForecastCity describes the place the forecast was computed for.
type ForecastCity struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Coord      Coordinates `json:"coord"`
	Country    string      `json:"country"`
	Population int64       `json:"population"`
	Timezone   int         `json:"timezone"`
	Sunrise    int64       `json:"sunrise"`
	Sunset     int64       `json:"sunset"`
}

// ForecastData is the multi-period forecast for one coordinate pair.
// A decoded value re-encodes to exactly the bytes it was decoded from.
type ForecastData struct {
	Cod     string         `json:"cod"`
	Message float64        `json:"message"`
	Cnt     int            `json:"cnt"`
	List    []ForecastItem `json:"list"`
	City    ForecastCity   `json:"city"`

	raw json.RawMessage
}

// Raw returns the document as received, or nil for a value built in code.
func (f ForecastData) Raw() json.RawMessage {
	return f.raw
}

func (f *ForecastData) UnmarshalJSON(b []byte) error {
	type view ForecastData
	var v view
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = ForecastData(v)
	f.raw = keepRaw(b)
	return nil
}

func (f ForecastData) MarshalJSON() ([]byte, error) {
	if f.raw != nil {
		return f.raw, nil
	}
	type view ForecastData
	return json.Marshal(view(f))
}
