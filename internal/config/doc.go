// Package config provides configuration parsing for navkit projects.
//
// The configuration is stored in navkit.json at the project root.
// This package handles loading, saving, validating and watching it.
//
// # Configuration File Structure
//
//	{
//	  "routing": {
//	    "mode": "hash",
//	    "basePath": "/app/"
//	  },
//	  "serve": {
//	    "dir": "dist",
//	    "addr": "localhost:3000",
//	    "index": "index.html",
//	    "cache": "production",
//	    "metricsPath": "/metrics"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := options.New(cfg.Options())
//	go config.Watch(ctx, cfg.Path(), func(next *config.Config) {
//	    next.ApplyTo(store)
//	})
package config
