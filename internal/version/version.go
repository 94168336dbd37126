package version

import (
	"fmt"
	"runtime"
)

var (
	// Name of the application
	AppName = "portfolio-backend"

	// Version of the application, set via ldflags on release builds
	Version = "0.1.0-dev"

	// Git commit hash of the application
	Revision = "HEAD"
)

func Detailed() string {
	return fmt.Sprintf("%s v%s (%s; %s; %s/%s)",
		AppName, Version, Revision, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
