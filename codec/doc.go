// Package codec builds the JSON request documents sent to the prettier sidecar.
//
// A request is an ordered set of named properties. Each property value is one
// of four kinds: String, Boolean, Number or RawJSON. RawJSON carries a fragment
// that is already serialized (for example a resolved options document) and is
// inlined verbatim rather than escaped as a string.
//
// Encoding is deterministic: keys keep their insertion order and the output is
// always a single physical line, so multi-line file content embeds safely.
package codec
