package json

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNotObject = errors.New("json value is not an object")

// Merge combines JSON objects left to right. Keys of later objects overwrite earlier ones. Numbers
// are kept verbatim, so large integers survive the round trip.
func Merge(objects ...[]byte) ([]byte, error) {
	merged := map[string]json.RawMessage{}
	for _, obj := range objects {
		var m map[string]json.RawMessage
		dec := json.NewDecoder(bytes.NewReader(obj))
		if err := dec.Decode(&m); err != nil {
			return nil, err
		}
		if m == nil {
			return nil, errNotObject
		}

		for key, value := range m {
			merged[key] = value
		}
	}

	return json.Marshal(merged)
}

// MarshalWith marshals v and adds the given fields on top of it.
func MarshalWith(v any, fields map[string]any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	extra, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	return Merge(body, extra)
}
