// Package cachectl exposes the cache lifecycle over HTTP.
//
//   - GET /cache/status: registry state, cache sizes and the last build.
//   - POST /cache/reinitialize: rebuild in the background (202), or in the
//     request with ?wait=true.
//   - DELETE /cache: drop the published caches.
package cachectl
