package api

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shareapi/share-api-mcp/internal/model"
)

// FetchEntryWithFiles fetches an entry and downloads its files into a
// per-entry subdirectory of downloadDir.
//
// A failed entry fetch is terminal. A failed individual download is
// not: it is recorded on the result and the remaining attachments are
// still processed. Text attachments need no network call; their
// content is already inline on the entry.
func (c *Client) FetchEntryWithFiles(ctx context.Context, baseURL string, entryID int, downloadDir string) (model.EntryResult, error) {
	absDir, err := filepath.Abs(downloadDir)
	if err != nil {
		return model.EntryResult{}, fmt.Errorf("resolve download dir: %w", err)
	}
	entryDir := filepath.Join(absDir, strconv.Itoa(entryID))

	entry, err := c.GetEntry(ctx, baseURL, entryID)
	if err != nil {
		return model.EntryResult{}, err
	}

	var downloaded []model.DownloadedFile
	var failed []model.FailedDownload

	if entry.FileURL != "" && entry.Filename != "" {
		df, err := c.DownloadEntryFile(ctx, baseURL, entry, entryDir)
		if err != nil {
			c.logger.Warn("entry file download failed", "entry_id", entry.ID, "filename", entry.Filename, "error", err)
			failed = append(failed, model.FailedDownload{
				AttachmentID: entry.ID,
				Filename:     entry.Filename,
				Error:        err.Error(),
			})
		} else {
			downloaded = append(downloaded, df)
		}
	}

	for _, att := range entry.Attachments {
		if !att.IsFile() || att.Filename == "" {
			continue
		}
		if att.FileURL == "" {
			c.logger.Warn("skipping attachment, file not on server", "attachment_id", att.ID, "filename", att.Filename)
			failed = append(failed, model.FailedDownload{
				AttachmentID: att.ID,
				Filename:     att.Filename,
				Error:        "file not available on server",
			})
			continue
		}

		df, err := c.DownloadAttachment(ctx, baseURL, att, entryDir)
		if err != nil {
			c.logger.Warn("attachment download failed", "attachment_id", att.ID, "filename", att.Filename, "error", err)
			failed = append(failed, model.FailedDownload{
				AttachmentID: att.ID,
				Filename:     att.Filename,
				Error:        err.Error(),
			})
			continue
		}
		downloaded = append(downloaded, df)
	}

	result := model.EntryResult{
		Entry:      entry,
		Downloaded: downloaded,
		Failed:     failed,
	}

	if err := os.MkdirAll(entryDir, 0o755); err != nil {
		return model.EntryResult{}, fmt.Errorf("create entry dir: %w", err)
	}
	contentPath := filepath.Join(entryDir, "content.md")
	if err := os.WriteFile(contentPath, []byte(result.Markdown()), 0o644); err != nil {
		return model.EntryResult{}, fmt.Errorf("write content.md: %w", err)
	}
	c.logger.Info("wrote content markdown", "path", contentPath)
	result.ContentPath = contentPath

	return result, nil
}
