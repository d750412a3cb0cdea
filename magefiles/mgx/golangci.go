package mgx

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// FindGCI locates golangci-lint, preferring a v2 binary installed under its
// versioned name. It falls back to the Go bin directory when that is not on
// PATH, and finally to the bare name so the exec error names the tool.
var FindGCI = sync.OnceValue(func() string {
	candidates := []string{"golangci-lint-v2", "golangci-lint"}
	for _, name := range candidates {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	bin := goBin()
	for _, name := range candidates {
		p := filepath.Join(bin, name)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return "golangci-lint"
})

func goBin() string {
	if gb := os.Getenv("GOBIN"); gb != "" {
		return gb
	}
	gp := os.Getenv("GOPATH")
	if gp == "" {
		gp = filepath.Join(os.Getenv("HOME"), "go")
	}
	return filepath.Join(gp, "bin")
}
