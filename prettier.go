package prettier

import (
	"time"

	"github.com/viant/prettier/client"
)

// ClientOptions defines options for connecting to a prettier sidecar.
type ClientOptions struct {
	Host    string        `yaml:"host,omitempty" json:"host,omitempty" short:"H" long:"host" description:"sidecar host" default:"localhost"`
	Port    int           `yaml:"port,omitempty" json:"port,omitempty" short:"p" long:"port" description:"sidecar port" default:"3000"`
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" short:"t" long:"timeout" description:"request timeout, e.g. 30s; zero uses transport defaults"`
}

// NewClient creates a sidecar client. Zero fields fall back to client defaults;
// extra options are applied after the ones derived from options.
func NewClient(options *ClientOptions, extra ...client.Option) *client.Client {
	var clientOptions []client.Option
	if options != nil {
		if options.Host != "" {
			clientOptions = append(clientOptions, client.WithHost(options.Host))
		}
		if options.Port != 0 {
			clientOptions = append(clientOptions, client.WithPort(options.Port))
		}
		if options.Timeout > 0 {
			clientOptions = append(clientOptions, client.WithTimeout(options.Timeout))
		}
	}
	return client.New(append(clientOptions, extra...)...)
}
