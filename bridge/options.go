package bridge

import (
	"errors"

	"github.com/viant/prettier"
)

type Options struct {
	prettier.ClientOptions `group:"sidecar"`

	ConfigPath  string `short:"c" long:"config" description:"prettier config file resolved by the sidecar"`
	Overrides   string `short:"o" long:"options" description:"option overrides as a JSON object, or @location of a JSON file"`
	Write       bool   `short:"w" long:"write" description:"rewrite files in place"`
	Check       bool   `short:"l" long:"check" description:"list files whose formatting differs and fail"`
	PrintConfig bool   `long:"print-config" description:"print resolved config options and exit"`
	Verbose     bool   `short:"v" long:"verbose" description:"log sidecar requests to stderr"`

	Positional struct {
		Files []string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

// Validate checks option combinations.
func (o *Options) Validate() error {
	if o.Write && o.Check {
		return errors.New("--write and --check are mutually exclusive")
	}
	if o.PrintConfig {
		if o.ConfigPath == "" {
			return errors.New("--print-config requires --config")
		}
		return nil
	}
	if len(o.Positional.Files) == 0 {
		return errors.New("no files to format")
	}
	return nil
}
