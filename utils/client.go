package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/jlee37/github-action-appetize/types"
	"github.com/jlee37/github-action-appetize/vars"
)

// Client performs the single authenticated POST against the Appetize API.
// The API expects HTTP basic auth with the token as username and an empty
// password.
type Client struct {
	httpClient *http.Client
	token      string
}

func NewClient(token string) *Client {
	return &Client{httpClient: &http.Client{}, token: token}
}

// Upload encodes the payload in its variant-specific form and sends it to
// the target address. Ownership of a file payload's stream passes here; it
// is closed once the request body has been assembled or the send aborts.
// Non-2xx responses surface as *types.APIError.
func (c *Client) Upload(target string, payload types.Payload) (*types.AppResponse, error) {
	var body bytes.Buffer
	var contentType string

	switch p := payload.(type) {
	case *types.FilePayload:
		defer p.File.Close()

		writer := multipart.NewWriter(&body)
		for _, field := range p.Fields {
			if err := writer.WriteField(field.Name, field.Value); err != nil {
				return nil, fmt.Errorf("writing %s field: %w", field.Name, err)
			}
		}
		part, err := writer.CreateFormFile("file", p.FileName)
		if err != nil {
			return nil, fmt.Errorf("creating file part: %w", err)
		}
		if _, err := io.Copy(part, p.File); err != nil {
			return nil, fmt.Errorf("reading build file: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("finalizing form: %w", err)
		}
		contentType = writer.FormDataContentType()

	case *types.URLPayload:
		data, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("marshalling payload: %w", err)
		}
		body.Write(data)
		contentType = "application/json"

	default:
		return nil, fmt.Errorf("unsupported payload type %T", payload)
	}

	req, err := http.NewRequest(http.MethodPost, target, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", vars.USER_AGENT)
	req.SetBasicAuth(c.token, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &types.APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var app types.AppResponse
	if err := json.Unmarshal(respBody, &app); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &app, nil
}
