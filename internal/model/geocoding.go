package model

import "encoding/json"

// GeocodingResponse is one place match from forward or reverse geocoding.
// A decoded value re-encodes to exactly the bytes it was decoded from.
type GeocodingResponse struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`

	raw json.RawMessage
}

// Raw returns the document as received, or nil for a value built in code.
func (g GeocodingResponse) Raw() json.RawMessage {
	return g.raw
}

func (g *GeocodingResponse) UnmarshalJSON(b []byte) error {
	type view GeocodingResponse
	var v view
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*g = GeocodingResponse(v)
	g.raw = keepRaw(b)
	return nil
}

func (g GeocodingResponse) MarshalJSON() ([]byte, error) {
	if g.raw != nil {
		return g.raw, nil
	}
	type view GeocodingResponse
	return json.Marshal(view(g))
}
