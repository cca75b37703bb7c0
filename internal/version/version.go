package version

// Version is overridden at build time:
//
//	go build -ldflags "-X ssrfind/internal/version.Version=v1.2.3" ./cmd/ssrfind
var Version = "dev"
