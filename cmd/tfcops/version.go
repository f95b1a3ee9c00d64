package main

// Version information injected via ldflags at release build time.
var (
	version = "latest"
	commit  = "unknown"
	date    = "unknown"
)
