// Command prettier-bridge formats files through a running prettier sidecar.
//
// The sidecar must already be listening (by default on localhost:3000).
// Formatted content is printed to stdout unless --write rewrites files in
// place or --check lists the files whose formatting differs.
//
//	prettier-bridge -c .prettierrc -o '{"parser":"typescript"}' src/app.ts
package main
