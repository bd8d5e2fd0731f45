package norm

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ExecutableName is the style checker nicenorm wraps.
const ExecutableName = "norminette"

// LocateExecutable finds name on searchPath, a PATH-style directory list.
// A name that already contains a separator is checked as-is. The first
// regular, executable match is returned.
func LocateExecutable(fs afero.Fs, name, searchPath string) (string, bool) {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		if isExecutable(fs, name) {
			return name, true
		}
		return "", false
	}

	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(fs, candidate) {
			return candidate, true
		}
	}

	return "", false
}

func isExecutable(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return isExecutableMode(info.Mode())
}

func isExecutableMode(mode os.FileMode) bool {
	return mode.IsRegular() && mode.Perm()&0o111 != 0
}
