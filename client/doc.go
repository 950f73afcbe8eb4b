// Package client implements the HTTP bridge to a running prettier sidecar.
//
// The sidecar exposes two endpoints on a loopback address:
//
//	POST /prettier/config-options   {"config_file_path": "<absolute path>"}
//	POST /prettier/format           {"file_content": "...", "resolved_config_options": {...}, "config_options": {...}}
//
// Each call is a single synchronous round trip on its own connection. The
// client keeps no state between calls, never retries, and never falls back to
// unformatted content: a call either returns the complete response body or an
// error (*RequestError for a non-200 status, *TransportError when the exchange
// did not complete or could not be prepared, including a config path that
// cannot be made absolute, *codec.EncodingError for an unencodable request).
package client
