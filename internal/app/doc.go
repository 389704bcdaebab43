// Package app wires the loader, resolver and plan output together and
// owns the application lifecycle.
package app
