package bridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/prettier/client"
	"github.com/viant/prettier/codec"
)

// ErrUnformatted is returned in check mode when some file would change.
var ErrUnformatted = errors.New("files are not formatted")

const defaultFileMode = os.FileMode(0o644)

type Service struct {
	options *Options
	client  client.Interface
	fs      afs.Service
	stdout  io.Writer
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(s *Service)

// WithStdout sets the writer receiving formatted content and check results.
func WithStdout(w io.Writer) Option {
	return func(s *Service) {
		s.stdout = w
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFileSystem sets the storage service used to read and write files.
func WithFileSystem(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// Run resolves the configured prettier config once, then formats each file in order.
// The first failure stops the run.
func (s *Service) Run(ctx context.Context) error {
	resolved, err := s.resolveConfig(ctx)
	if err != nil {
		return err
	}
	if s.options.PrintConfig {
		if resolved.IsZero() {
			s.logger.LogAttrs(ctx, slog.LevelInfo, "no prettier config found", slog.String("config", s.options.ConfigPath))
			_, err = io.WriteString(s.stdout, "null\n")
			return err
		}
		_, err = s.stdout.Write(pretty.Pretty([]byte(resolved)))
		return err
	}
	overrides, err := s.overrides(ctx)
	if err != nil {
		return err
	}
	var unformatted int
	for _, location := range s.options.Positional.Files {
		changed, err := s.formatFile(ctx, location, resolved, overrides)
		if err != nil {
			return err
		}
		if changed && s.options.Check {
			unformatted++
		}
	}
	if unformatted > 0 {
		return fmt.Errorf("%w: %d file(s)", ErrUnformatted, unformatted)
	}
	return nil
}

func (s *Service) formatFile(ctx context.Context, location string, resolved, overrides codec.RawJSON) (bool, error) {
	content, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return false, fmt.Errorf("failed to read %v: %w", location, err)
	}
	formatted, err := s.client.Format(ctx, string(content), resolved, overrides)
	if err != nil {
		return false, fmt.Errorf("failed to format %v: %w", location, err)
	}
	changed := formatted != string(content)
	s.logger.LogAttrs(ctx, slog.LevelDebug, "file formatted", slog.String("file", location), slog.Bool("changed", changed))
	switch {
	case s.options.Check:
		if changed {
			_, err = fmt.Fprintln(s.stdout, location)
		}
	case s.options.Write:
		if changed {
			err = s.write(ctx, location, formatted)
		}
	default:
		_, err = io.WriteString(s.stdout, formatted)
	}
	return changed, err
}

func (s *Service) write(ctx context.Context, location, formatted string) error {
	mode := defaultFileMode
	if object, err := s.fs.Object(ctx, location); err == nil {
		mode = object.Mode().Perm()
	}
	if err := s.fs.Upload(ctx, location, mode, strings.NewReader(formatted)); err != nil {
		return fmt.Errorf("failed to write %v: %w", location, err)
	}
	return nil
}

// resolveConfig returns the resolved options document, empty when no config is set
// or the sidecar found none.
func (s *Service) resolveConfig(ctx context.Context) (codec.RawJSON, error) {
	if s.options.ConfigPath == "" {
		return "", nil
	}
	resolved, err := s.client.ResolveConfig(ctx, localPath(s.options.ConfigPath))
	if err != nil {
		return "", err
	}
	resolved = strings.TrimSpace(resolved)
	if resolved == "null" {
		// absent document means prettier defaults; never send a JSON null
		return "", nil
	}
	return codec.RawJSON(resolved), nil
}

// overrides returns the override document given inline or loaded from @location.
func (s *Service) overrides(ctx context.Context) (codec.RawJSON, error) {
	document := strings.TrimSpace(s.options.Overrides)
	if document == "" {
		return "", nil
	}
	if location, ok := strings.CutPrefix(document, "@"); ok {
		data, err := s.fs.DownloadWithURL(ctx, location)
		if err != nil {
			return "", fmt.Errorf("failed to read options %v: %w", location, err)
		}
		document = string(bytes.TrimSpace(data))
	}
	if !gjson.Valid(document) || !gjson.Parse(document).IsObject() {
		return "", fmt.Errorf("invalid options: expected a JSON object: %v", s.options.Overrides)
	}
	return codec.RawJSON(document), nil
}

// localPath converts a file:// URL to a filesystem path; other locations are returned as is.
func localPath(location string) string {
	if strings.HasPrefix(location, "file:") {
		return url.Path(location)
	}
	return location
}

// New creates a bridge service.
func New(options *Options, aClient client.Interface, opts ...Option) *Service {
	ret := &Service{
		options: options,
		client:  aClient,
		fs:      afs.New(),
		stdout:  os.Stdout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
