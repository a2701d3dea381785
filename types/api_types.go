package types

import "fmt"

// AppResponse represents an uploaded app as returned by the Appetize API.
type AppResponse struct {
	PublicKey   string `json:"publicKey"`
	PublicURL   string `json:"publicURL,omitempty"`
	AppURL      string `json:"appURL,omitempty"`
	ManageURL   string `json:"manageURL,omitempty"`
	Platform    string `json:"platform,omitempty"`
	VersionCode int    `json:"versionCode,omitempty"`
	Created     string `json:"created,omitempty"`
	Updated     string `json:"updated,omitempty"`
}

// APIError represents an error response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError: %d: %s", e.StatusCode, e.Message)
}
