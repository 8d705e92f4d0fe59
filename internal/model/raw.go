package model

import "encoding/json"

// keepRaw copies b; decoders may reuse their input buffer.
func keepRaw(b []byte) json.RawMessage {
	return append(json.RawMessage(nil), b...)
}
