// Package server holds the HTTP server configuration.
//
// The start command reads the listen port, the API key that protects every
// route except the Swagger UI, and whether caches are built before the
// server accepts requests.
package server
