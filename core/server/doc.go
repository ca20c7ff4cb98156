// Package server holds the HTTP server configuration.
//
// The start command reads this section to bind the listener, size the request
// body limit and decide whether the administrative routes (snapshot purge,
// lookup reload, schema integrity) are mounted.
package server
