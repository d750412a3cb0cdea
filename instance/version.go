package instance

import (
	"runtime/debug"
	"strings"
	"sync"
)

type BuildInfo struct {
	MainModule string
	MainRev    string
	GoVersion  string
	Version    string
}

var buildInfo = sync.OnceValue(loadBuildInfo)

func Version() string {
	return buildInfo().Version
}

func VersionInfo() BuildInfo {
	return buildInfo()
}

func loadBuildInfo() BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return BuildInfo{
			MainModule: "fastcat.org/go/linelen",
			MainRev:    "unknown",
			Version:    "0.0.0-development+unknown",
		}
	}

	info := BuildInfo{
		MainModule: bi.Main.Path,
		MainRev:    "unknown",
		GoVersion:  bi.GoVersion,
		Version:    bi.Main.Version,
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			// vcs.modified not needed, go will include the +dirty for us
			info.MainRev = s.Value
			if len(info.MainRev) > 8 {
				info.MainRev = info.MainRev[:8]
			}
		}
	}
	// go revisions often contain the git hash already
	if info.MainRev != "unknown" && !strings.Contains(info.Version, info.MainRev) {
		info.Version += "+" + info.MainRev
	}
	return info
}
