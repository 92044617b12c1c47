package backend

import (
	"fmt"
	"io"
)

// UploadResponse is the body returned by the media upload endpoint,
// which proxies the file to the third-party host.
type UploadResponse struct {
	Msg      string `json:"msg"`
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// UploadFile posts a multipart form ("file" + "folderName") and returns
// the public URL of the stored file.
func (c *Client) UploadFile(filename string, file io.Reader, folderName string) (string, error) {
	req := c.http.R()
	if c.token != "" {
		req.SetHeader("Authorization", "Bearer "+c.token)
	}

	resp, err := req.
		SetFileReader("file", filename, file).
		SetFormData(map[string]string{"folderName": folderName}).
		Post("/upload")
	if err != nil {
		return "", fmt.Errorf("backend: upload: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", &APIError{StatusCode: resp.StatusCode(), Message: serverMessage(resp.Body())}
	}

	out, err := decodeOne[UploadResponse](resp.Body())
	if err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", fmt.Errorf("backend: upload returned no url")
	}
	return out.URL, nil
}
