package types

import "errors"

// Validation failures, all raised before any network activity.
var (
	ErrInvalidPlatform = errors.New(`platform must be "ios" or "android"`)
	ErrMissingSource   = errors.New("one of appFile or appUrl is required")
	ErrInvalidFileType = errors.New(`fileType must be "apk", "zip" or "tar.gz"`)
	ErrInvalidTimeout  = errors.New("timeout must be one of 30, 60, 120, 180, 300, 600, 1800, 3600 or 7200 seconds")
)
