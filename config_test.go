package appetize

import (
	"testing"

	"github.com/jlee37/github-action-appetize/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		APIHost:  "https://api.example.com",
		APIToken: "tok",
		Platform: "android",
		AppURL:   "https://files/app.apk",
	}
}

func TestValidatePlatform(t *testing.T) {
	for _, platform := range []string{"", "windows", "Android", "IOS", "ios "} {
		cfg := validConfig()
		cfg.Platform = platform
		assert.ErrorIs(t, cfg.Validate(), types.ErrInvalidPlatform, "platform %q", platform)
	}

	for _, platform := range []string{"ios", "android"} {
		cfg := validConfig()
		cfg.Platform = platform
		assert.NoError(t, cfg.Validate(), "platform %q", platform)
	}
}

func TestValidateMissingSource(t *testing.T) {
	cfg := validConfig()
	cfg.AppFile = ""
	cfg.AppURL = ""
	assert.ErrorIs(t, cfg.Validate(), types.ErrMissingSource)

	// Both set is allowed; the builder prefers the file.
	cfg.AppFile = "app.apk"
	cfg.AppURL = "https://files/app.apk"
	assert.NoError(t, cfg.Validate())
}

func TestValidateFileType(t *testing.T) {
	for _, fileType := range []string{"apk", "zip", "tar.gz", ""} {
		cfg := validConfig()
		cfg.FileType = fileType
		assert.NoError(t, cfg.Validate(), "fileType %q", fileType)
	}

	for _, fileType := range []string{"ipa", "exe", "tar", "APK"} {
		cfg := validConfig()
		cfg.FileType = fileType
		assert.ErrorIs(t, cfg.Validate(), types.ErrInvalidFileType, "fileType %q", fileType)
	}
}

func TestValidateTimeout(t *testing.T) {
	for _, timeout := range []int{0, 30, 60, 120, 180, 300, 600, 1800, 3600, 7200} {
		cfg := validConfig()
		cfg.Timeout = timeout
		assert.NoError(t, cfg.Validate(), "timeout %d", timeout)
	}

	for _, timeout := range []int{1, 45, 90, 7201, -30} {
		cfg := validConfig()
		cfg.Timeout = timeout
		assert.ErrorIs(t, cfg.Validate(), types.ErrInvalidTimeout, "timeout %d", timeout)
	}
}

func TestValidateStopsAtFirstViolation(t *testing.T) {
	cfg := &Config{Platform: "windows", FileType: "exe", Timeout: 45}
	assert.ErrorIs(t, cfg.Validate(), types.ErrInvalidPlatform)

	cfg.Platform = "ios"
	assert.ErrorIs(t, cfg.Validate(), types.ErrMissingSource)

	cfg.AppURL = "https://files/app.zip"
	assert.ErrorIs(t, cfg.Validate(), types.ErrInvalidFileType)

	cfg.FileType = "zip"
	assert.ErrorIs(t, cfg.Validate(), types.ErrInvalidTimeout)
}

func TestParseFlag(t *testing.T) {
	cases := map[string]bool{
		"":        false,
		"true":    true,
		"TRUE":    true,
		"1":       true,
		"false":   false,
		"FALSE":   false,
		"0":       false,
		"yes":     true,
		"enabled": true,
		"  ":      false,
	}
	for input, want := range cases {
		assert.Equal(t, want, parseFlag(input), "input %q", input)
	}
}

func TestParseTimeout(t *testing.T) {
	v, err := parseTimeout("")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = parseTimeout(" 60 ")
	require.NoError(t, err)
	assert.Equal(t, 60, v)

	_, err = parseTimeout("soon")
	assert.ErrorIs(t, err, types.ErrInvalidTimeout)
}

func TestInferFileType(t *testing.T) {
	cases := map[string]string{
		"app.apk":               "apk",
		"build/Output.APK":      "apk",
		"ios-build.zip":         "zip",
		"payload.tar.gz":        "tar.gz",
		"app.ipa":               "",
		"release-notes.txt":     "",
		"nested/dir/bundle.zip": "zip",
	}
	for path, want := range cases {
		assert.Equal(t, want, inferFileType(path), "path %q", path)
	}
}
