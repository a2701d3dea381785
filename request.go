package appetize

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jlee37/github-action-appetize/types"
	"github.com/jlee37/github-action-appetize/vars"
)

// Target returns the collection address, or the address of an existing
// artifact when a public key was supplied.
func (c *Config) Target() string {
	return strings.TrimSuffix(c.APIHost, "/") + vars.APPS_PATH + c.PublicKey
}

// BuildPayload selects the upload source and produces the request body.
// A local file wins when both sources are set. Validation already ruled
// out the no-source case; it is re-checked here for direct callers.
func (c *Config) BuildPayload() (types.Payload, error) {
	switch {
	case c.AppFile != "":
		return c.filePayload()
	case c.AppURL != "":
		return c.urlPayload(), nil
	}
	return nil, types.ErrMissingSource
}

// filePayload opens the build for streaming and collects the form fields.
// Optional fields are appended only when a value was actually supplied,
// and every value is carried as text. The stream is handed to the
// transport, which closes it.
func (c *Config) filePayload() (*types.FilePayload, error) {
	f, err := os.Open(c.AppFile)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", c.AppFile, err)
	}

	fields := []types.FormField{{Name: "platform", Value: c.Platform}}
	appendIf := func(name, value string) {
		if value != "" {
			fields = append(fields, types.FormField{Name: name, Value: value})
		}
	}

	appendIf("fileType", c.FileType)
	appendIf("note", c.Note)
	if c.Timeout != 0 {
		appendIf("timeout", strconv.Itoa(c.Timeout))
	}
	if c.Disabled {
		appendIf("disabled", "true")
	}
	if c.DisableHome {
		appendIf("disableHome", "true")
	}
	if c.UseLastFrame {
		appendIf("useLastFrame", "true")
	}
	appendIf("buttonText", c.ButtonText)
	appendIf("postSessionButtonText", c.PostSessionButtonText)
	appendIf("launchUrl", c.LaunchURL)

	return &types.FilePayload{
		File:     f,
		FileName: filepath.Base(c.AppFile),
		Fields:   fields,
	}, nil
}

func (c *Config) urlPayload() *types.URLPayload {
	return &types.URLPayload{
		URL:                   c.AppURL,
		Platform:              c.Platform,
		FileType:              c.FileType,
		Note:                  c.Note,
		Timeout:               c.Timeout,
		Disabled:              c.Disabled,
		DisableHome:           c.DisableHome,
		UseLastFrame:          c.UseLastFrame,
		ButtonText:            c.ButtonText,
		PostSessionButtonText: c.PostSessionButtonText,
		LaunchURL:             c.LaunchURL,
	}
}
