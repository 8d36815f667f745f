package version

// Version is overridden at build time with -ldflags "-X pairdist/internal/version.Version=...".
var Version = "dev"
