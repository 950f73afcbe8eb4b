// Package mock provides an in-process fake prettier sidecar for tests.
package mock
