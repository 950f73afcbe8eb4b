// Package bridge implements the prettier-bridge command line driver.
package bridge
