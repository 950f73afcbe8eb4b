// Package prettier bridges a Go build tool to an out-of-process prettier
// formatter (a Node based sidecar listening on a loopback HTTP port).
//
// The module is organised in three layers:
//  1. codec – builds the ordered, single-line JSON request documents,
//     including verbatim raw JSON fragments for option documents;
//  2. client – issues the two sidecar operations, resolve config and format,
//     converting transport and status failures into typed errors;
//  3. bridge – a small command line driver formatting files through the sidecar.
//
// The sidecar process itself is expected to be running already; this module
// neither installs nor supervises it.
//
// Example:
//
//	cli := prettier.NewClient(&prettier.ClientOptions{Port: 3000})
//	options, _ := cli.ResolveConfig(ctx, "/repo/.prettierrc")
//	formatted, err := cli.Format(ctx, "let x=1", codec.RawJSON(options), "")
package prettier
