// Package model defines the value types exchanged with the share API.
// All types are constructed once from an API response or a completed
// download and never mutated afterwards.
package model

// Attachment types used by the API.
const (
	AttachmentFile = "file"
	AttachmentText = "text"
)

// Attachment is a single item attached to an entry. A file attachment
// is downloadable via the files endpoint; a text attachment carries its
// content inline in Body.
type Attachment struct {
	ID       int            `json:"id"`
	Type     string         `json:"type"`
	Body     map[string]any `json:"body"`
	Filename string         `json:"filename"`
	FileSize int64          `json:"file_size"`
	FileURL  string         `json:"file_url"`
}

// IsFile reports whether the attachment should be downloaded from the
// files endpoint rather than read inline.
func (a Attachment) IsFile() bool {
	return a.Type == AttachmentFile
}

// Entry is one shared record. Entries may carry their own file in
// addition to attachments.
type Entry struct {
	ID          int            `json:"id"`
	Type        string         `json:"type"`
	Subject     string         `json:"subject"`
	Body        map[string]any `json:"body"`
	Filename    string         `json:"filename"`
	FileSize    int64          `json:"file_size"`
	FileURL     string         `json:"file_url"`
	Attachments []Attachment   `json:"attachments"`
}

// DownloadedFile records one file materialized to local disk. It is
// constructed only after the write completed, so Path always names an
// existing file inside the download directory.
type DownloadedFile struct {
	AttachmentID int
	Filename     string
	Path         string
	Size         int64
}

// FailedDownload records a file attachment that could not be
// downloaded, with a human-readable cause.
type FailedDownload struct {
	AttachmentID int
	Filename     string
	Error        string
}

// EntryResult bundles a fetched entry with the outcome of downloading
// its files. Downloaded and Failed are disjoint by attachment id and
// together cover every file attachment of the entry.
type EntryResult struct {
	Entry       Entry
	Downloaded  []DownloadedFile
	Failed      []FailedDownload
	ContentPath string
}

// EntrySummary is one row of the paginated list endpoint.
type EntrySummary struct {
	ID              int    `json:"id"`
	Type            string `json:"type"`
	Subject         string `json:"subject"`
	Body            string `json:"body"`
	Filename        string `json:"filename"`
	FileSize        int64  `json:"file_size"`
	AttachmentCount int    `json:"attachment_count"`
	CreatedAt       string `json:"created_at"`
}

// EntryList is the result of the list endpoint.
type EntryList struct {
	Entries []EntrySummary `json:"entries"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// CustomField describes one user-defined field.
type CustomField struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	OptionCount int    `json:"option_count"`
	CreatedAt   string `json:"created_at"`
}

// ExportedField is a custom field with its option names, as produced
// by the export endpoint and consumed by import.
type ExportedField struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SortOrder   int      `json:"sort_order"`
	Options     []string `json:"options"`
}

// ImportResult summarizes a custom-field import.
type ImportResult struct {
	FieldsCreated  int `json:"fields_created"`
	OptionsCreated int `json:"options_created"`
}

// FieldOption is one selectable value of a custom field.
type FieldOption struct {
	ID         int    `json:"id"`
	FieldName  string `json:"field_name"`
	Name       string `json:"name"`
	CreatedAt  string `json:"created_at"`
	EntryCount int    `json:"entry_count"`
}

// FieldDescriptor is one row of the schema discovery endpoint.
type FieldDescriptor struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	ResourcePath string `json:"resource_path"`
}

// AuthInfo reports the authentication method the server expects.
type AuthInfo struct {
	Method string `json:"method"`
}
