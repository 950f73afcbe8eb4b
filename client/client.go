package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/viant/prettier/codec"
)

const (
	// DefaultHost is the sidecar host used when none is configured.
	DefaultHost = "localhost"
	// DefaultPort is the sidecar port used when none is configured.
	DefaultPort = 3000

	ConfigOptionsURI = "/prettier/config-options"
	FormatURI        = "/prettier/format"

	// RequestIDHeader carries a per call id the sidecar can log.
	RequestIDHeader = "X-Request-Id"

	maxErrorBody = 4 << 10
)

// Request property names.
const (
	PropertyConfigFilePath        = "config_file_path"
	PropertyFileContent           = "file_content"
	PropertyResolvedConfigOptions = "resolved_config_options"
	PropertyConfigOptions         = "config_options"
)

// Operation names reported in errors and logs.
const (
	OperationResolveConfig = "resolve config"
	OperationFormat        = "format"
)

var errInvalidUTF8 = errors.New("response body is not valid UTF-8")

var absPath = filepath.Abs

// Client issues requests to a prettier sidecar. It holds no mutable state and
// is safe for concurrent use.
type Client struct {
	host       string
	port       int
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// BaseURL returns the sidecar base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolveConfig asks the sidecar to resolve the prettier config file at configFilePath
// and returns the response body verbatim. A relative path is made absolute first.
func (c *Client) ResolveConfig(ctx context.Context, configFilePath string) (string, error) {
	location, err := absPath(configFilePath)
	if err != nil {
		return "", &TransportError{Operation: OperationResolveConfig, URL: c.baseURL + ConfigOptionsURI, Err: err}
	}
	properties := codec.NewProperties()
	properties.Put(PropertyConfigFilePath, codec.String(location))
	return c.send(ctx, OperationResolveConfig, ConfigOptionsURI, properties)
}

// Format sends fileContent to the sidecar and returns the formatted content exactly
// as received. resolvedOptions and overrides are included only when non-empty.
func (c *Client) Format(ctx context.Context, fileContent string, resolvedOptions, overrides codec.RawJSON) (string, error) {
	properties := codec.NewProperties()
	properties.Put(PropertyFileContent, codec.String(fileContent))
	if !resolvedOptions.IsZero() {
		properties.Put(PropertyResolvedConfigOptions, resolvedOptions)
	}
	if !overrides.IsZero() {
		properties.Put(PropertyConfigOptions, overrides)
	}
	return c.send(ctx, OperationFormat, FormatURI, properties)
}

func (c *Client) send(ctx context.Context, operation, URI string, properties *codec.Properties) (string, error) {
	body, err := codec.Encode(properties)
	if err != nil {
		return "", err
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	URL := c.baseURL + URI
	requestID := uuid.New().String()
	logger := c.logger.With(
		slog.String("operation", operation),
		slog.String("url", URL),
		slog.String("request_id", requestID),
	)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, URL, bytes.NewReader(body))
	if err != nil {
		return "", &TransportError{Operation: operation, URL: URL, Err: err}
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set(RequestIDHeader, requestID)
	request.Close = true

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "sidecar request failed", slog.String("error", err.Error()))
		return "", &TransportError{Operation: operation, URL: URL, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
		requestErr := &RequestError{
			Operation:  operation,
			StatusCode: response.StatusCode,
			Message:    statusMessage(response),
			Body:       strings.ToValidUTF8(strings.TrimSpace(string(errorBody)), "\uFFFD"),
		}
		logger.LogAttrs(ctx, slog.LevelError, "sidecar rejected request",
			slog.Int("status", response.StatusCode),
			slog.Duration("duration", time.Since(start)),
		)
		return "", requestErr
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "sidecar response read failed", slog.String("error", err.Error()))
		return "", &TransportError{Operation: operation, URL: URL, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &TransportError{Operation: operation, URL: URL, Err: errInvalidUTF8}
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "sidecar request handled",
		slog.Int("status", response.StatusCode),
		slog.Int("bytes", len(data)),
		slog.Duration("duration", time.Since(start)),
	)
	return string(data), nil
}

// statusMessage returns the reason phrase of the response status line.
func statusMessage(response *http.Response) string {
	message := strings.TrimSpace(strings.TrimPrefix(response.Status, strconv.Itoa(response.StatusCode)))
	if message == "" {
		message = http.StatusText(response.StatusCode)
	}
	return message
}

// New creates a sidecar client, by default targeting http://localhost:3000.
func New(options ...Option) *Client {
	ret := &Client{
		host: DefaultHost,
		port: DefaultPort,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.baseURL == "" {
		ret.baseURL = "http://" + net.JoinHostPort(ret.host, strconv.Itoa(ret.port))
	}
	ret.baseURL = strings.TrimRight(ret.baseURL, "/")
	if ret.httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		// one connection per call, opened and closed within the call
		transport.DisableKeepAlives = true
		transport.Proxy = nil
		ret.httpClient = &http.Client{Transport: transport}
	}
	if ret.logger == nil {
		ret.logger = slog.New(slog.DiscardHandler)
	}
	return ret
}
