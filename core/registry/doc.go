// Package registry owns the published game-data caches.
//
// A Registry fetches every trainer record from a source.Source, runs the
// aggregation and publishes the frozen result with a single atomic store.
// Readers call Instance without locking. Builds run one at a time, either
// synchronously through Initialize and Reinitialize or in the background
// through Submit.
package registry
