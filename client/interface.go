package client

import (
	"context"

	"github.com/viant/prettier/codec"
)

// Interface defines the sidecar operations
type Interface interface {
	// ResolveConfig returns the resolved options document for a prettier config file.
	ResolveConfig(ctx context.Context, configFilePath string) (string, error)

	// Format returns the formatted content. Empty option documents are omitted from the request.
	Format(ctx context.Context, fileContent string, resolvedOptions, overrides codec.RawJSON) (string, error)
}

var _ Interface = (*Client)(nil)
