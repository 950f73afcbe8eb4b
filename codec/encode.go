package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// Encode serializes properties into a minimal single-line JSON object.
func Encode(properties *Properties) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	if properties != nil {
		for i, entry := range properties.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, entry.Name); err != nil {
				return nil, &EncodingError{Key: entry.Name, Reason: err.Error()}
			}
			buf.WriteByte(':')
			if err := writeValue(buf, entry.Value); err != nil {
				err.Key = entry.Name
				return nil, err
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, value Value) *EncodingError {
	switch actual := value.(type) {
	case String:
		if err := writeString(buf, string(actual)); err != nil {
			return &EncodingError{Value: value, Reason: err.Error()}
		}
	case Boolean:
		buf.WriteString(strconv.FormatBool(bool(actual)))
	case Number:
		f := float64(actual)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &EncodingError{Value: value, Reason: "number is not finite"}
		}
		data, err := json.Marshal(f)
		if err != nil {
			return &EncodingError{Value: value, Reason: err.Error()}
		}
		buf.Write(data)
	case RawJSON:
		if !gjson.Valid(string(actual)) {
			return &EncodingError{Value: value, Reason: "invalid raw JSON fragment"}
		}
		// compacted so a pretty-printed fragment keeps the document on one line
		buf.Write(pretty.Ugly([]byte(actual)))
	default:
		return &EncodingError{Value: value, Reason: "unsupported value"}
	}
	return nil
}

// writeString escapes s as a JSON string. Line terminators (\n, \r and \r\n)
// become escape sequences, so the document never spans lines.
// Invalid UTF-8 is rejected rather than replaced.
func writeString(buf *bytes.Buffer, s string) error {
	if !utf8.ValidString(s) {
		return errInvalidUTF8
	}
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return err
	}
	// Encoder terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
