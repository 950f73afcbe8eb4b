package codec

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var errNotObject = errors.New("codec: document is not a JSON object")

// Decode parses a JSON object into properties, preserving member order.
// Nested objects and arrays are kept verbatim as RawJSON.
func Decode(data []byte) (*Properties, error) {
	text := string(data)
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("codec: invalid JSON document")
	}
	document := gjson.Parse(text)
	if !document.IsObject() {
		return nil, errNotObject
	}
	ret := NewProperties()
	var err error
	document.ForEach(func(key, value gjson.Result) bool {
		var decoded Value
		switch value.Type {
		case gjson.String:
			decoded = String(value.Str)
		case gjson.True, gjson.False:
			decoded = Boolean(value.Bool())
		case gjson.Number:
			decoded = Number(value.Num)
		case gjson.JSON:
			decoded = RawJSON(value.Raw)
		default:
			err = &EncodingError{Key: key.Str, Reason: "null is not a supported value"}
			return false
		}
		ret.Put(key.Str, decoded)
		return true
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}
