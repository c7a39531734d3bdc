package version

// Set at build time via -ldflags "-X github.com/momorph/pathkit/internal/version.Version=..."
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)
