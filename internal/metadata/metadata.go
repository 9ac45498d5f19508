package metadata

// Set at link time via -ldflags "-X ...".
var (
	Version    = "dev"
	CommitHash = "n/a"
	BuildTime  = "n/a"
)
