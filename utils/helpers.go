package utils

import (
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/zeebo/blake3"
)

// GetInput reads a GitHub Action input: INPUT_<NAME> with spaces replaced
// by underscores, falling back to the bare option name for local runs.
func GetInput(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(os.Getenv(name))
}

// ResolveFile expands a glob pattern to a concrete file path, returning
// the first match in sorted order. A plain path passes through untouched.
func ResolveFile(pattern string) (string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		return pattern, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return "", fmt.Errorf("bad appFile pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no file matched %q", pattern)
	}

	sort.Strings(matches)
	return matches[0], nil
}

// FileChecksum returns a truncated Blake3 hash of the file contents,
// matching the 32 hex character form used elsewhere in the pipeline.
func FileChecksum(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])[:32], nil
}

// FormatTime returns a formatted string for a duration.
func FormatTime(duration time.Duration) string {
	return fmt.Sprintf("(%.2f sec)", duration.Seconds())
}
