package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// CreateEntry posts a new entry to the share.php webhook. With a file
// path the request goes out as multipart/form-data, otherwise as JSON.
// The webhook responds with the new entry id as plain text.
func (c *Client) CreateEntry(ctx context.Context, baseURL, textOrURL, filePath string, extraFields map[string]string) (string, error) {
	u := NormalizeBaseURL(baseURL) + "/share.php"
	c.logger.Info("creating entry", "url", u, "has_file", filePath != "")

	var req *http.Request
	var err error
	if filePath != "" {
		req, err = c.newUploadRequest(ctx, u, textOrURL, filePath, extraFields)
	} else {
		payload := map[string]string{}
		if textOrURL != "" {
			payload["text_or_url"] = textOrURL
		}
		for k, v := range extraFields {
			payload[k] = v
		}
		var data []byte
		data, err = json.Marshal(payload)
		if err == nil {
			req, err = c.newRequest(ctx, http.MethodPost, u, bytes.NewReader(data))
			if req != nil {
				req.Header.Set("Content-Type", "application/json")
			}
		}
	}
	if err != nil {
		return "", &FetchError{URL: u, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{URL: u, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: u, Err: err}
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *Client) newUploadRequest(ctx context.Context, u, textOrURL, filePath string, extraFields map[string]string) (*http.Request, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}

	if textOrURL != "" {
		if err := w.WriteField("text_or_url", textOrURL); err != nil {
			return nil, err
		}
	}
	for k, v := range extraFields {
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, u, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req, nil
}
