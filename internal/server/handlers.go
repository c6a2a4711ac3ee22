package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shareapi/share-api-mcp/internal/config"
	"github.com/shareapi/share-api-mcp/internal/model"
)

// fetchSharedEntry is the core of the fetch_shared_entry tool: resolve
// configuration, fetch the entry, download its files, render the
// result. Every failure path comes back as an "Error: ..." string.
func (s *Server) fetchSharedEntry(ctx context.Context, entryID int, baseURL, downloadDir string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		s.logger.Warn("fetch_shared_entry misconfigured", "entry_id", entryID, "error", err)
		return errString(err)
	}
	dir := resolveDownloadDir(downloadDir, st)

	s.logger.Info("fetching entry", "entry_id", entryID, "base_url", base, "download_dir", dir)

	result, err := s.newClient(st).FetchEntryWithFiles(ctx, base, entryID, dir)
	if err != nil {
		s.logger.Warn("entry fetch failed", "entry_id", entryID, "error", err)
		return errString(err)
	}

	s.logger.Info("fetched entry", "entry_id", entryID, "downloaded", len(result.Downloaded), "failed", len(result.Failed))
	return result.Format()
}

func (s *Server) listEntries(ctx context.Context, baseURL string, page, perPage int, filtersJSON string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	var filters map[string]any
	if filtersJSON != "" {
		if err := json.Unmarshal([]byte(filtersJSON), &filters); err != nil {
			return fmt.Sprintf("Error: invalid filters JSON: %v", err)
		}
	}
	// Auto-filter by the configured project unless the caller already
	// narrowed to one.
	if st.ProjectID != "" {
		if _, ok := filters["project_id"]; !ok {
			if filters == nil {
				filters = map[string]any{}
			}
			filters["project_id"] = st.ProjectID
		}
	}

	list, err := s.newClient(st).ListEntries(ctx, base, page, perPage, filters)
	if err != nil {
		s.logger.Warn("list entries failed", "error", err)
		return errString(err)
	}
	return list.Format()
}

func (s *Server) updateEntry(ctx context.Context, entryID int, baseURL, subject, bodyJSON, customFieldsJSON string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	payload := map[string]any{}
	if subject != "" {
		payload["subject"] = subject
	}
	if bodyJSON != "" {
		var body any
		if err := json.Unmarshal([]byte(bodyJSON), &body); err != nil {
			return fmt.Sprintf("Error: invalid body JSON: %v", err)
		}
		payload["body"] = body
	}
	if customFieldsJSON != "" {
		var fields map[string]any
		if err := json.Unmarshal([]byte(customFieldsJSON), &fields); err != nil {
			return fmt.Sprintf("Error: invalid custom_fields JSON: %v", err)
		}
		for k, v := range fields {
			payload[k] = v
		}
	}

	entry, err := s.newClient(st).UpdateEntry(ctx, base, entryID, payload)
	if err != nil {
		s.logger.Warn("update entry failed", "entry_id", entryID, "error", err)
		return errString(err)
	}
	return fmt.Sprintf("Updated entry #%d: %s", entry.ID, entry.Subject)
}

func (s *Server) deleteEntry(ctx context.Context, entryID int, baseURL string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	msg, err := s.newClient(st).DeleteEntry(ctx, base, entryID)
	if err != nil {
		s.logger.Warn("delete entry failed", "entry_id", entryID, "error", err)
		return errString(err)
	}
	return msg
}

func (s *Server) createEntry(ctx context.Context, baseURL, textOrURL, filePath, extraFieldsJSON string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	var extra map[string]string
	if extraFieldsJSON != "" {
		if err := json.Unmarshal([]byte(extraFieldsJSON), &extra); err != nil {
			return fmt.Sprintf("Error: invalid extra_fields JSON: %v", err)
		}
	}

	entryID, err := s.newClient(st).CreateEntry(ctx, base, textOrURL, filePath, extra)
	if err != nil {
		s.logger.Warn("create entry failed", "error", err)
		return errString(err)
	}
	return "Created entry: " + entryID
}

func (s *Server) listCustomFields(ctx context.Context, baseURL string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	fields, err := s.newClient(st).ListCustomFields(ctx, base)
	if err != nil {
		return errString(err)
	}
	return model.FormatCustomFields(fields)
}

func (s *Server) createCustomField(ctx context.Context, baseURL, name, description string, sortOrder int) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	field, err := s.newClient(st).CreateCustomField(ctx, base, name, description, sortOrder)
	if err != nil {
		return errString(err)
	}
	return "Created custom field: " + field.Format()
}

func (s *Server) updateCustomField(ctx context.Context, baseURL, name, description string, sortOrder int) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	payload := map[string]any{"description": description, "sort_order": sortOrder}
	field, err := s.newClient(st).UpdateCustomField(ctx, base, name, payload)
	if err != nil {
		return errString(err)
	}
	return "Updated custom field: " + field.Format()
}

func (s *Server) deleteCustomField(ctx context.Context, baseURL, name string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	msg, err := s.newClient(st).DeleteCustomField(ctx, base, name)
	if err != nil {
		return errString(err)
	}
	return msg
}

func (s *Server) exportCustomFields(ctx context.Context, baseURL string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	fields, err := s.newClient(st).ExportCustomFields(ctx, base)
	if err != nil {
		return errString(err)
	}
	return model.FormatExportedFields(fields)
}

func (s *Server) importCustomFields(ctx context.Context, baseURL, fieldsJSON string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	var fields any
	if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
		return fmt.Sprintf("Error: invalid fields_json: %v", err)
	}

	result, err := s.newClient(st).ImportCustomFields(ctx, base, fields)
	if err != nil {
		return errString(err)
	}
	return result.Format()
}

func (s *Server) listFieldOptions(ctx context.Context, baseURL, fieldName string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	options, err := s.newClient(st).ListFieldOptions(ctx, base, fieldName)
	if err != nil {
		return errString(err)
	}
	return model.FormatFieldOptions(fieldName, options)
}

func (s *Server) createFieldOption(ctx context.Context, baseURL, fieldName, name string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	option, err := s.newClient(st).CreateFieldOption(ctx, base, fieldName, name)
	if err != nil {
		return errString(err)
	}
	return "Created option: " + option.Format()
}

func (s *Server) updateFieldOption(ctx context.Context, baseURL, fieldName string, optionID int, name string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	option, err := s.newClient(st).UpdateFieldOption(ctx, base, fieldName, optionID, name)
	if err != nil {
		return errString(err)
	}
	return "Updated option: " + option.Format()
}

func (s *Server) deleteFieldOption(ctx context.Context, baseURL, fieldName string, optionID int) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	msg, err := s.newClient(st).DeleteFieldOption(ctx, base, fieldName, optionID)
	if err != nil {
		return errString(err)
	}
	return msg
}

func (s *Server) deleteAttachment(ctx context.Context, attachmentID int, baseURL string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	msg, err := s.newClient(st).DeleteAttachment(ctx, base, attachmentID)
	if err != nil {
		s.logger.Warn("delete attachment failed", "attachment_id", attachmentID, "error", err)
		return errString(err)
	}
	return msg
}

func (s *Server) getAuthInfo(ctx context.Context, baseURL string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	info, err := s.newClient(st).GetAuthInfo(ctx, base)
	if err != nil {
		return errString(err)
	}
	return info.Format()
}

func (s *Server) listFields(ctx context.Context, baseURL string) string {
	st := config.Load()
	base, err := resolveBaseURL(baseURL, st)
	if err != nil {
		return errString(err)
	}

	fields, err := s.newClient(st).ListFields(ctx, base)
	if err != nil {
		return errString(err)
	}
	return model.FormatFieldDescriptors(fields)
}
