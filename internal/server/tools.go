package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// text wraps a handler result in the single-channel text form. Error
// strings travel the same way as success content; there is no
// structured error channel on this tool surface.
func text(s string) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s), nil
}

const baseURLDesc = "Base URL of the share API (e.g. http://host/share). Falls back to SHARE_API_BASE_URL."

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("fetch_shared_entry",
			mcp.WithDescription("Fetch a shared entry by ID, download its file attachments and return the entry content with local file paths."),
			mcp.WithNumber("entry_id", mcp.Required(), mcp.Description("Numeric ID of the entry to fetch")),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
			mcp.WithString("download_dir", mcp.Description("Directory for downloaded files. Falls back to SHARE_API_DOWNLOAD_DIR or ./downloads.")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			entryID, err := req.RequireInt("entry_id")
			if err != nil {
				return text(errString(err))
			}
			return text(s.fetchSharedEntry(ctx, entryID, req.GetString("base_url", ""), req.GetString("download_dir", "")))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("list_entries",
			mcp.WithDescription("List shared entries with pagination and optional JSON filters. If SHARE_API_PROJECT_ID is set, entries are automatically filtered by that project."),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
			mcp.WithNumber("page", mcp.Description("Page number, default 1")),
			mcp.WithNumber("per_page", mcp.Description("Entries per page, default 20")),
			mcp.WithString("filters", mcp.Description(`Optional JSON object of filters, e.g. '{"project_id": 1, "status_id": 2}'`)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return text(s.listEntries(ctx,
				req.GetString("base_url", ""),
				req.GetInt("page", 1),
				req.GetInt("per_page", 20),
				req.GetString("filters", "")))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("update_entry",
			mcp.WithDescription("Update a shared entry by ID."),
			mcp.WithNumber("entry_id", mcp.Required(), mcp.Description("Numeric ID of the entry to update")),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
			mcp.WithString("subject", mcp.Description("New subject for the entry")),
			mcp.WithString("body", mcp.Description(`New body content as a JSON string, e.g. '{"content": "text"}'`)),
			mcp.WithString("custom_fields", mcp.Description(`Optional JSON object of custom field values, e.g. '{"status_id": 3}'`)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			entryID, err := req.RequireInt("entry_id")
			if err != nil {
				return text(errString(err))
			}
			return text(s.updateEntry(ctx, entryID,
				req.GetString("base_url", ""),
				req.GetString("subject", ""),
				req.GetString("body", ""),
				req.GetString("custom_fields", "")))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("delete_entry",
			mcp.WithDescription("Delete a shared entry by ID (cascades to attachments)."),
			mcp.WithNumber("entry_id", mcp.Required(), mcp.Description("Numeric ID of the entry to delete")),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			entryID, err := req.RequireInt("entry_id")
			if err != nil {
				return text(errString(err))
			}
			return text(s.deleteEntry(ctx, entryID, req.GetString("base_url", "")))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("create_entry",
			mcp.WithDescription("Create a new entry via the webhook endpoint."),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
			mcp.WithString("text_or_url", mcp.Description("Text content or URL to share")),
			mcp.WithString("file_path", mcp.Description("Path to a local file to upload")),
			mcp.WithString("extra_fields", mcp.Description(`Optional JSON object of extra fields, e.g. '{"_status": "open"}'`)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return text(s.createEntry(ctx,
				req.GetString("base_url", ""),
				req.GetString("text_or_url", ""),
				req.GetString("file_path", ""),
				req.GetString("extra_fields", "")))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("list_custom_fields",
			mcp.WithDescription("List all custom fields."),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return text(s.listCustomFields(ctx, req.GetString("base_url", "")))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("create_custom_field",
			mcp.WithDescription("Create a new custom field."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Name of the field to create")),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
			mcp.WithString("description", mcp.Description("Optional description for the field")),
			mcp.WithNumber("sort_order", mcp.Description("Sort order, default 0")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name, err := req.RequireString("name")
			if err != nil {
				return text(errString(err))
			}
			return text(s.createCustomField(ctx,
				req.GetString("base_url", ""),
				name,
				req.GetString("description", ""),
				req.GetInt("sort_order", 0)))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("update_custom_field",
			mcp.WithDescription("Update an existing custom field."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Name of the field to update")),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
			mcp.WithString("description", mcp.Description("New description for the field")),
			mcp.WithNumber("sort_order", mcp.Description("New sort order")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name, err := req.RequireString("name")
			if err != nil {
				return text(errString(err))
			}
			return text(s.updateCustomField(ctx,
				req.GetString("base_url", ""),
				name,
				req.GetString("description", ""),
				req.GetInt("sort_order", 0)))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("delete_custom_field",
			mcp.WithDescription("Delete a custom field by name (cascades to options)."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Name of the field to delete")),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name, err := req.RequireString("name")
			if err != nil {
				return text(errString(err))
			}
			return text(s.deleteCustomField(ctx, req.GetString("base_url", ""), name))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("export_custom_fields",
			mcp.WithDescription("Export all custom fields with their options."),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return text(s.exportCustomFields(ctx, req.GetString("base_url", "")))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("import_custom_fields",
			mcp.WithDescription("Import custom fields from a JSON structure (merge mode)."),
			mcp.WithString("fields_json", mcp.Required(), mcp.Description("JSON string containing the fields to import")),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			fieldsJSON, err := req.RequireString("fields_json")
			if err != nil {
				return text(errString(err))
			}
			return text(s.importCustomFields(ctx, req.GetString("base_url", ""), fieldsJSON))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("list_field_options",
			mcp.WithDescription("List all options for a custom field."),
			mcp.WithString("field_name", mcp.Required(), mcp.Description("Name of the custom field")),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			fieldName, err := req.RequireString("field_name")
			if err != nil {
				return text(errString(err))
			}
			return text(s.listFieldOptions(ctx, req.GetString("base_url", ""), fieldName))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("create_field_option",
			mcp.WithDescription("Create a new option for a custom field."),
			mcp.WithString("field_name", mcp.Required(), mcp.Description("Name of the custom field")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Name of the option to create")),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			fieldName, err := req.RequireString("field_name")
			if err != nil {
				return text(errString(err))
			}
			name, err := req.RequireString("name")
			if err != nil {
				return text(errString(err))
			}
			return text(s.createFieldOption(ctx, req.GetString("base_url", ""), fieldName, name))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("update_field_option",
			mcp.WithDescription("Rename a field option."),
			mcp.WithString("field_name", mcp.Required(), mcp.Description("Name of the custom field")),
			mcp.WithNumber("option_id", mcp.Required(), mcp.Description("ID of the option to update")),
			mcp.WithString("name", mcp.Required(), mcp.Description("New name for the option")),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			fieldName, err := req.RequireString("field_name")
			if err != nil {
				return text(errString(err))
			}
			optionID, err := req.RequireInt("option_id")
			if err != nil {
				return text(errString(err))
			}
			name, err := req.RequireString("name")
			if err != nil {
				return text(errString(err))
			}
			return text(s.updateFieldOption(ctx, req.GetString("base_url", ""), fieldName, optionID, name))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("delete_field_option",
			mcp.WithDescription("Delete a field option (cascades to entries using it)."),
			mcp.WithString("field_name", mcp.Required(), mcp.Description("Name of the custom field")),
			mcp.WithNumber("option_id", mcp.Required(), mcp.Description("ID of the option to delete")),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			fieldName, err := req.RequireString("field_name")
			if err != nil {
				return text(errString(err))
			}
			optionID, err := req.RequireInt("option_id")
			if err != nil {
				return text(errString(err))
			}
			return text(s.deleteFieldOption(ctx, req.GetString("base_url", ""), fieldName, optionID))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("delete_attachment",
			mcp.WithDescription("Delete an attachment by ID."),
			mcp.WithNumber("attachment_id", mcp.Required(), mcp.Description("ID of the attachment to delete")),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			attachmentID, err := req.RequireInt("attachment_id")
			if err != nil {
				return text(errString(err))
			}
			return text(s.deleteAttachment(ctx, attachmentID, req.GetString("base_url", "")))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("get_auth_info",
			mcp.WithDescription("Get authentication method info from the API."),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return text(s.getAuthInfo(ctx, req.GetString("base_url", "")))
		},
	)

	s.mcp.AddTool(
		mcp.NewTool("list_fields",
			mcp.WithDescription("List all field descriptors (schema discovery)."),
			mcp.WithString("base_url", mcp.Description(baseURLDesc)),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return text(s.listFields(ctx, req.GetString("base_url", "")))
		},
	)
}
