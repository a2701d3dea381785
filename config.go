package appetize

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/jlee37/github-action-appetize/types"
	"github.com/jlee37/github-action-appetize/vars"
)

// Validate enforces the upload rules in order, stopping at the first
// violation. It performs no network or filesystem access.
func (c *Config) Validate() error {
	if !slices.Contains(vars.ALLOWED_PLATFORMS, c.Platform) {
		return fmt.Errorf("%w, got %q", types.ErrInvalidPlatform, c.Platform)
	}
	if c.AppFile == "" && c.AppURL == "" {
		return types.ErrMissingSource
	}
	if c.FileType != "" && !slices.Contains(vars.ALLOWED_FILE_TYPES, c.FileType) {
		return fmt.Errorf("%w, got %q", types.ErrInvalidFileType, c.FileType)
	}
	if c.Timeout != 0 && !slices.Contains(vars.ALLOWED_TIMEOUTS, c.Timeout) {
		return fmt.Errorf("%w, got %d", types.ErrInvalidTimeout, c.Timeout)
	}
	return nil
}

// parseFlag treats the empty string as unset. Values strconv.ParseBool
// understands are honored, so a literal "false" or "0" stays false; any
// other non-empty value counts as true.
func parseFlag(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	return true
}

func parseTimeout(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w, got %q", types.ErrInvalidTimeout, s)
	}
	return v, nil
}

// inferFileType guesses the archive type from the file name when no hint
// was supplied. Unknown extensions yield an empty hint.
func inferFileType(path string) string {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".tar.gz"):
		return "tar.gz"
	case strings.HasSuffix(name, ".apk"):
		return "apk"
	case strings.HasSuffix(name, ".zip"):
		return "zip"
	}
	return ""
}
