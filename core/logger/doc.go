// Package logger provides a structured logging facility based on Zap.
//
// Level "debug" selects zap's development preset, anything else the
// production preset. Format selects json or console encoding.
//
// WithRayID attaches the request's ray_id (set by the rayid middleware) so
// every line logged for one request can be correlated.
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Server started")
//
//	l := logger.WithRayID(log, c)
//	l.Error("Lookup failed", zap.Error(err))
package logger
