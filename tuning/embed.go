package tuning

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript reads an embedded director script, preferring a disk copy
// under tuning/scripts/ so scripts can be edited without rebuilding.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("tuning", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

//go:embed *.yaml
var TuningFS embed.FS

// Load reads a tuning file, preferring a disk copy under tuning/ over the
// embedded default.
func Load(name string) ([]byte, error) {
	clean := cleanTuningPath(name)
	if data, err := os.ReadFile(diskTuningPath(clean)); err == nil {
		return data, nil
	}
	return TuningFS.ReadFile(clean)
}

// ModTime reports the disk copy's modification time, if one exists.
func ModTime(name string) (time.Time, bool) {
	clean := cleanTuningPath(name)
	info, err := os.Stat(diskTuningPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanTuningPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "tuning/") {
		return strings.TrimPrefix(s, "tuning/")
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "tuning/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "tuning/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskTuningPath(clean string) string {
	return filepath.Join("tuning", filepath.FromSlash(clean))
}
