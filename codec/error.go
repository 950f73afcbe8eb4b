package codec

import "fmt"

// EncodingError reports a value that cannot be mapped to a supported JSON kind.
type EncodingError struct {
	Key    string
	Value  any
	Reason string
}

func (e *EncodingError) Error() string {
	if e.Key == "" {
		return "codec: " + e.Reason
	}
	return fmt.Sprintf("codec: property %q: %s", e.Key, e.Reason)
}
