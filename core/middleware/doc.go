// Package middleware contains HTTP middleware for the Fiber application.
//
//   - auth: API key validation for every protected route.
//   - rayid: a per-request ID stored in the context and echoed in the
//     X-Ray-ID response header, picked up by logger.WithRayID.
package middleware
