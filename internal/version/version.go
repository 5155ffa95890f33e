package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/batch-rename/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/batch-rename/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/batch-rename/internal/version.Date={{.Date}}
)

// String returns the version with commit and build date when they are known
func String() string {
	s := Version
	if Commit != "unknown" && Commit != "" {
		s += " (" + Commit
		if Date != "unknown" && Date != "" {
			s += ", built " + Date
		}
		s += ")"
	}
	return s
}
