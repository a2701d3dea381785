// Package appetize uploads a mobile application build to the Appetize
// hosting API, either by streaming a local file or by referencing a remote
// URL, and returns the public key issued for the artifact.
package appetize

import (
	"encoding/json"
	"fmt"

	"github.com/jlee37/github-action-appetize/types"
	"github.com/jlee37/github-action-appetize/utils"
	"github.com/jlee37/github-action-appetize/vars"
	"github.com/jlee37/github-action-appetize/worker"
)

// Config is the flat set of options controlling a single upload. It is
// assembled once per invocation and read-only afterwards.
type Config struct {
	APIHost   string `json:"apiHost"`
	APIToken  string `json:"apiToken"`
	PublicKey string `json:"publicKey"`
	Platform  string `json:"platform"`
	AppFile   string `json:"appFile"`
	AppURL    string `json:"appUrl"`
	FileType  string `json:"fileType"`
	Note      string `json:"note"`
	Timeout   int    `json:"timeout"`

	Disabled     bool `json:"disabled"`
	DisableHome  bool `json:"disableHome"`
	UseLastFrame bool `json:"useLastFrame"`

	ButtonText            string `json:"buttonText"`
	PostSessionButtonText string `json:"postSessionButtonText"`
	LaunchURL             string `json:"launchUrl"`
}

// NewConfigFromEnv assembles a Config from GitHub Action inputs
// (INPUT_APIHOST and friends, falling back to the bare option names for
// local runs). An appFile glob pattern is resolved to a concrete path here
// so everything downstream works with a plain file path.
func NewConfigFromEnv() (*Config, error) {
	cfg := &Config{
		APIHost:               utils.GetInput("apiHost"),
		APIToken:              utils.GetInput("apiToken"),
		PublicKey:             utils.GetInput("publicKey"),
		Platform:              utils.GetInput("platform"),
		AppFile:               utils.GetInput("appFile"),
		AppURL:                utils.GetInput("appUrl"),
		FileType:              utils.GetInput("fileType"),
		Note:                  utils.GetInput("note"),
		Disabled:              parseFlag(utils.GetInput("disabled")),
		DisableHome:           parseFlag(utils.GetInput("disableHome")),
		UseLastFrame:          parseFlag(utils.GetInput("useLastFrame")),
		ButtonText:            utils.GetInput("buttonText"),
		PostSessionButtonText: utils.GetInput("postSessionButtonText"),
		LaunchURL:             utils.GetInput("launchUrl"),
	}

	if cfg.APIHost == "" {
		cfg.APIHost = vars.DEFAULT_API_HOST
	}

	timeout, err := parseTimeout(utils.GetInput("timeout"))
	if err != nil {
		return nil, err
	}
	cfg.Timeout = timeout

	if cfg.AppFile != "" {
		resolved, err := utils.ResolveFile(cfg.AppFile)
		if err != nil {
			return nil, err
		}
		cfg.AppFile = resolved
	}
	if cfg.FileType == "" && cfg.AppFile != "" {
		cfg.FileType = inferFileType(cfg.AppFile)
	}

	return cfg, nil
}

// Deploy validates the configuration, builds the request and performs the
// upload. The returned response carries the artifact's public key.
func (c *Config) Deploy() (*types.AppResponse, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	target := c.Target()
	payload, err := c.BuildPayload()
	if err != nil {
		return nil, err
	}

	checksum := ""
	if _, isFile := payload.(*types.FilePayload); isFile {
		if sum, sumErr := utils.FileChecksum(c.AppFile); sumErr == nil {
			checksum = sum
			fmt.Println("📦 Build checksum: " + checksum)
		}
	}

	fmt.Println("🚀 Uploading to " + target)
	fmt.Println(c.debugSummary())

	app, err := utils.NewClient(c.APIToken).Upload(target, payload)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	c.recordHistory(app, checksum)

	return app, nil
}

// debugSummary renders the configuration with the auth token masked. The
// real token must never reach diagnostic output.
func (c *Config) debugSummary() string {
	scrubbed := *c
	scrubbed.APIToken = vars.TOKEN_PLACEHOLDER

	data, err := json.MarshalIndent(scrubbed, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

// recordHistory appends the result to the optional D1 upload ledger.
// Ledger failures never fail a successful upload.
func (c *Config) recordHistory(app *types.AppResponse, checksum string) {
	if !worker.Enabled() {
		return
	}

	source := c.AppFile
	if source == "" {
		source = c.AppURL
	}

	var note *string
	if c.Note != "" {
		note = &c.Note
	}

	rec := worker.Upload{
		PublicKey: app.PublicKey,
		Platform:  c.Platform,
		Source:    source,
		Checksum:  checksum,
		Note:      note,
	}
	if err := worker.RecordUpload(rec); err != nil {
		fmt.Println("⚠️ Failed to record upload history:", err)
	}
}
