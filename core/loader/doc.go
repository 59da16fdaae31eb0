// Package loader provides the feature loading system.
//
// Each HTTP module implements Feature and is registered on a Manager.
// LoadAll asks every enabled feature to register its routes, in
// registration order.
//
//	mgr := loader.NewManager(log)
//	mgr.Register(dex.NewFeature(reg, log))
//	if err := mgr.LoadAll(app); err != nil {
//	    log.Fatal("Failed to load features", zap.Error(err))
//	}
package loader
