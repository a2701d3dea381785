package types

import "io"

// FormField is a single multipart form entry. Fields are kept as an
// ordered slice so request bodies are reproducible.
type FormField struct {
	Name  string
	Value string
}

// Payload is the body of an upload request, exactly one of two shapes:
// FilePayload (multipart form) or URLPayload (JSON object).
type Payload interface {
	isPayload()
}

// FilePayload streams local build bytes as a multipart form. Fields
// carries the platform plus only those optional values that were actually
// supplied, all of them as text.
type FilePayload struct {
	File     io.ReadCloser
	FileName string
	Fields   []FormField
}

// URLPayload references a remote build instead of uploading bytes. Every
// member is always serialized, whether supplied or not.
type URLPayload struct {
	URL                   string `json:"url"`
	Platform              string `json:"platform"`
	FileType              string `json:"fileType"`
	Note                  string `json:"note"`
	Timeout               int    `json:"timeout"`
	Disabled              bool   `json:"disabled"`
	DisableHome           bool   `json:"disableHome"`
	UseLastFrame          bool   `json:"useLastFrame"`
	ButtonText            string `json:"buttonText"`
	PostSessionButtonText string `json:"postSessionButtonText"`
	LaunchURL             string `json:"launchUrl"`
}

func (*FilePayload) isPayload() {}
func (*URLPayload) isPayload()  {}
