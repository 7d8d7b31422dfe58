package graphname

// Version is the module release, overridden at build time with
// -ldflags "-X github.com/aretw0/graphname.Version=...".
var Version = "0.1.0"
