package vars

const (
	DEFAULT_API_HOST  = "https://api.appetize.io"
	APPS_PATH         = "/v1/apps/"
	USER_AGENT        = "github-action-appetize/1.0"
	TOKEN_PLACEHOLDER = "scrubbed"
)

var (
	ALLOWED_PLATFORMS  = []string{"ios", "android"}
	ALLOWED_FILE_TYPES = []string{"apk", "zip", "tar.gz"}

	// Session lengths (in seconds) accepted by the API.
	ALLOWED_TIMEOUTS = []int{30, 60, 120, 180, 300, 600, 1800, 3600, 7200}
)
