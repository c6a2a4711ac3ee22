package model

import (
	"fmt"
	"sort"
	"strings"
)

// bodyLines renders a body map as sorted "key: value" lines with the
// given indent. Sorting keeps the output stable across runs.
func bodyLines(body map[string]any, indent string) []string {
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, body[k]))
	}
	return lines
}

// Format renders the entry, its attachments and the download outcome
// as the human/LLM-readable tool output.
func (r EntryResult) Format() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Entry #%d: %s", r.Entry.ID, r.Entry.Subject))
	lines = append(lines, fmt.Sprintf("Type: %s", r.Entry.Type))

	if len(r.Entry.Body) > 0 {
		lines = append(lines, "", "Body:")
		lines = append(lines, bodyLines(r.Entry.Body, "  ")...)
	}

	if r.Entry.Filename != "" {
		lines = append(lines, fmt.Sprintf("File: %s (%d bytes)", r.Entry.Filename, r.Entry.FileSize))
	}

	if len(r.Entry.Attachments) > 0 {
		lines = append(lines, "", fmt.Sprintf("Attachments (%d):", len(r.Entry.Attachments)))
		for _, att := range r.Entry.Attachments {
			if att.Filename != "" {
				lines = append(lines, fmt.Sprintf("  [%d] %s: %s (%d bytes)", att.ID, att.Type, att.Filename, att.FileSize))
			} else {
				lines = append(lines, fmt.Sprintf("  [%d] %s", att.ID, att.Type))
			}
			lines = append(lines, bodyLines(att.Body, "    ")...)
		}
	}

	if len(r.Downloaded) > 0 {
		lines = append(lines, "", "Downloaded files:")
		for _, df := range r.Downloaded {
			lines = append(lines, fmt.Sprintf("  %s -> %s (%d bytes)", df.Filename, df.Path, df.Size))
		}
	}

	if len(r.Failed) > 0 {
		lines = append(lines, "", "Failed to download:")
		for _, fd := range r.Failed {
			lines = append(lines, fmt.Sprintf("  [%d] %s: %s", fd.AttachmentID, fd.Filename, fd.Error))
		}
	}

	return strings.Join(lines, "\n")
}

// Markdown renders the entry as the content.md document written next
// to the downloaded files.
func (r EntryResult) Markdown() string {
	var lines []string
	subject := r.Entry.Subject
	if subject == "" {
		subject = fmt.Sprintf("Entry %d", r.Entry.ID)
	}
	lines = append(lines, "# "+subject, "")
	lines = append(lines, fmt.Sprintf("- Entry ID: %d", r.Entry.ID))
	lines = append(lines, fmt.Sprintf("- Type: %s", r.Entry.Type))

	if len(r.Entry.Body) > 0 {
		lines = append(lines, "", "## Body", "")
		lines = append(lines, bodyLines(r.Entry.Body, "")...)
	}

	var texts []Attachment
	for _, att := range r.Entry.Attachments {
		if !att.IsFile() && len(att.Body) > 0 {
			texts = append(texts, att)
		}
	}
	if len(texts) > 0 {
		lines = append(lines, "", "## Notes", "")
		for _, att := range texts {
			lines = append(lines, bodyLines(att.Body, "")...)
		}
	}

	if len(r.Downloaded) > 0 {
		lines = append(lines, "", "## Files", "")
		for _, df := range r.Downloaded {
			lines = append(lines, fmt.Sprintf("- %s (%d bytes): %s", df.Filename, df.Size, df.Path))
		}
	}

	if len(r.Failed) > 0 {
		lines = append(lines, "", "## Missing files", "")
		for _, fd := range r.Failed {
			lines = append(lines, fmt.Sprintf("- %s: %s", fd.Filename, fd.Error))
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

// Format renders one page of the entry list.
func (l EntryList) Format() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Entries (page %d, %d per page, %d total):", l.Page, l.PerPage, l.Total))
	if len(l.Entries) == 0 {
		lines = append(lines, "  (none)")
	}
	for _, e := range l.Entries {
		line := fmt.Sprintf("  #%d [%s] %s", e.ID, e.Type, e.Subject)
		if e.Filename != "" {
			line += fmt.Sprintf(" — file: %s (%d bytes)", e.Filename, e.FileSize)
		}
		if e.AttachmentCount > 0 {
			line += fmt.Sprintf(" — %d attachments", e.AttachmentCount)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Format renders one custom field.
func (f CustomField) Format() string {
	line := fmt.Sprintf("%s (sort %d, %d options)", f.Name, f.SortOrder, f.OptionCount)
	if f.Description != "" {
		line += ": " + f.Description
	}
	return line
}

// FormatCustomFields renders the custom field list.
func FormatCustomFields(fields []CustomField) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Custom fields (%d):", len(fields)))
	if len(fields) == 0 {
		lines = append(lines, "  (none)")
	}
	for _, f := range fields {
		lines = append(lines, "  "+f.Format())
	}
	return strings.Join(lines, "\n")
}

// FormatExportedFields renders the export endpoint result.
func FormatExportedFields(fields []ExportedField) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Exported fields (%d):", len(fields)))
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("  %s (sort %d)", f.Name, f.SortOrder))
		for _, o := range f.Options {
			lines = append(lines, "    - "+o)
		}
	}
	return strings.Join(lines, "\n")
}

// Format renders an import summary.
func (r ImportResult) Format() string {
	return fmt.Sprintf("Imported: %d fields created, %d options created", r.FieldsCreated, r.OptionsCreated)
}

// Format renders one field option.
func (o FieldOption) Format() string {
	return fmt.Sprintf("[%d] %s (%d entries)", o.ID, o.Name, o.EntryCount)
}

// FormatFieldOptions renders the option list of one field.
func FormatFieldOptions(fieldName string, options []FieldOption) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Options for %s (%d):", fieldName, len(options)))
	if len(options) == 0 {
		lines = append(lines, "  (none)")
	}
	for _, o := range options {
		lines = append(lines, "  "+o.Format())
	}
	return strings.Join(lines, "\n")
}

// FormatFieldDescriptors renders the schema discovery result.
func FormatFieldDescriptors(fields []FieldDescriptor) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Fields (%d):", len(fields)))
	for _, f := range fields {
		line := fmt.Sprintf("  %s (%s)", f.Name, f.Type)
		if f.Description != "" {
			line += ": " + f.Description
		}
		if f.ResourcePath != "" {
			line += " — " + f.ResourcePath
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Format renders the auth info.
func (a AuthInfo) Format() string {
	if a.Method == "" {
		return "Auth method: none"
	}
	return "Auth method: " + a.Method
}
