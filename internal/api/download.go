package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/shareapi/share-api-mcp/internal/model"
)

// downloadChunkSize bounds the copy buffer so large files never sit
// fully in memory.
const downloadChunkSize = 32 * 1024

// DownloadAttachment streams one file attachment into destDir and
// returns the materialized file. Failures come back as *DownloadError;
// no file is left behind on a partial write.
func (c *Client) DownloadAttachment(ctx context.Context, baseURL string, att model.Attachment, destDir string) (model.DownloadedFile, error) {
	u := fmt.Sprintf("%s/api.php/files/%d", NormalizeBaseURL(baseURL), att.ID)
	return c.downloadTo(ctx, u, att.ID, att.Filename, destDir)
}

// DownloadEntryFile streams an entry-level file into destDir. The
// resulting DownloadedFile carries the entry id in AttachmentID, the
// same convention the API uses for the entry file endpoint.
func (c *Client) DownloadEntryFile(ctx context.Context, baseURL string, entry model.Entry, destDir string) (model.DownloadedFile, error) {
	u := fmt.Sprintf("%s/api.php/entries/%d/file", NormalizeBaseURL(baseURL), entry.ID)
	return c.downloadTo(ctx, u, entry.ID, entry.Filename, destDir)
}

func (c *Client) downloadTo(ctx context.Context, rawURL string, id int, filename, destDir string) (model.DownloadedFile, error) {
	c.logger.Info("downloading file", "url", rawURL, "filename", filename)

	name := SanitizeFilename(filename)
	if name == "" {
		name = fmt.Sprintf("attachment_%d", id)
	}

	req, err := c.newRequest(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return model.DownloadedFile{}, &DownloadError{AttachmentID: id, Filename: filename, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.DownloadedFile{}, &DownloadError{AttachmentID: id, Filename: filename, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.DownloadedFile{}, &DownloadError{AttachmentID: id, Filename: filename, Status: resp.StatusCode}
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return model.DownloadedFile{}, &DownloadError{AttachmentID: id, Filename: filename, Err: err}
	}

	f, path, err := createUnique(destDir, name)
	if err != nil {
		return model.DownloadedFile{}, &DownloadError{AttachmentID: id, Filename: filename, Err: err}
	}

	size, err := io.CopyBuffer(f, resp.Body, make([]byte, downloadChunkSize))
	if err != nil {
		f.Close()
		os.Remove(path)
		return model.DownloadedFile{}, &DownloadError{AttachmentID: id, Filename: filename, Err: err}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(path)
		return model.DownloadedFile{}, &DownloadError{AttachmentID: id, Filename: filename, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return model.DownloadedFile{}, &DownloadError{AttachmentID: id, Filename: filename, Err: err}
	}

	c.logger.Info("downloaded file", "path", path, "bytes", size)
	return model.DownloadedFile{
		AttachmentID: id,
		Filename:     name,
		Path:         path,
		Size:         size,
	}, nil
}
