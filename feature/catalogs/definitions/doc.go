// Package definitions declares the catalogs served by the service and the
// lookup tables their references resolve through.
package definitions
