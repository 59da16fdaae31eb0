// Package dex serves read-only lookups over the published caches.
//
// Every route answers 503 while the caches are not initialized and 404 when
// the name is not in the cache. Names are matched the way the caches match
// them, so "mr mime" finds "Mr. Mime".
//
// # Routes
//
//   - GET /trainers, /pokemon, /moves, /skills: list cached names
//   - GET /trainers/:name: the trainer record
//   - GET /pokemon/:name: every pokemon grouped under that name
//   - GET /moves/:name: the move and the pokemon that use it
//   - GET /skills/:name: the passive and its innate and grid users
package dex
