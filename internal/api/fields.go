package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shareapi/share-api-mcp/internal/model"
)

// ListCustomFields fetches all custom fields.
func (c *Client) ListCustomFields(ctx context.Context, baseURL string) ([]model.CustomField, error) {
	u := NormalizeBaseURL(baseURL) + "/api.php/custom-fields"
	c.logger.Info("listing custom fields", "url", u)

	var body struct {
		Data []model.CustomField `json:"data"`
	}
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

// CreateCustomField creates a custom field.
func (c *Client) CreateCustomField(ctx context.Context, baseURL, name, description string, sortOrder int) (model.CustomField, error) {
	u := NormalizeBaseURL(baseURL) + "/api.php/custom-fields"
	c.logger.Info("creating custom field", "name", name)

	payload := map[string]any{
		"name":        name,
		"description": description,
		"sort_order":  sortOrder,
	}
	var field model.CustomField
	if err := c.doJSON(ctx, http.MethodPost, u, payload, &field); err != nil {
		return model.CustomField{}, err
	}
	return field, nil
}

// UpdateCustomField updates a custom field by name.
func (c *Client) UpdateCustomField(ctx context.Context, baseURL, name string, payload map[string]any) (model.CustomField, error) {
	u := fmt.Sprintf("%s/api.php/custom-fields/%s", NormalizeBaseURL(baseURL), url.PathEscape(name))
	c.logger.Info("updating custom field", "name", name)

	var field model.CustomField
	if err := c.doJSON(ctx, http.MethodPut, u, payload, &field); err != nil {
		return model.CustomField{}, err
	}
	return field, nil
}

// DeleteCustomField deletes a custom field; the server cascades to
// its options.
func (c *Client) DeleteCustomField(ctx context.Context, baseURL, name string) (string, error) {
	u := fmt.Sprintf("%s/api.php/custom-fields/%s", NormalizeBaseURL(baseURL), url.PathEscape(name))
	c.logger.Info("deleting custom field", "name", name)

	var msg messageBody
	if err := c.doJSON(ctx, http.MethodDelete, u, nil, &msg); err != nil {
		return "", err
	}
	if msg.Message == "" {
		msg.Message = "Custom field deleted"
	}
	return msg.Message, nil
}

// ExportCustomFields fetches all custom fields with their options.
func (c *Client) ExportCustomFields(ctx context.Context, baseURL string) ([]model.ExportedField, error) {
	u := NormalizeBaseURL(baseURL) + "/api.php/custom-fields/export"
	c.logger.Info("exporting custom fields", "url", u)

	var body struct {
		Data []model.ExportedField `json:"data"`
	}
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

// ImportCustomFields merges a previously exported field structure into
// the server.
func (c *Client) ImportCustomFields(ctx context.Context, baseURL string, fields any) (model.ImportResult, error) {
	u := NormalizeBaseURL(baseURL) + "/api.php/custom-fields/import"
	c.logger.Info("importing custom fields", "url", u)

	var result model.ImportResult
	if err := c.doJSON(ctx, http.MethodPost, u, fields, &result); err != nil {
		return model.ImportResult{}, err
	}
	return result, nil
}

// ListFieldOptions fetches the options of one custom field.
func (c *Client) ListFieldOptions(ctx context.Context, baseURL, fieldName string) ([]model.FieldOption, error) {
	u := fmt.Sprintf("%s/api.php/field-options/%s", NormalizeBaseURL(baseURL), url.PathEscape(fieldName))
	c.logger.Info("listing field options", "field", fieldName)

	var body struct {
		Data []model.FieldOption `json:"data"`
	}
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	options := body.Data
	for i := range options {
		if options[i].FieldName == "" {
			options[i].FieldName = fieldName
		}
	}
	return options, nil
}

// CreateFieldOption creates an option for a custom field.
func (c *Client) CreateFieldOption(ctx context.Context, baseURL, fieldName, name string) (model.FieldOption, error) {
	u := fmt.Sprintf("%s/api.php/field-options/%s", NormalizeBaseURL(baseURL), url.PathEscape(fieldName))
	c.logger.Info("creating field option", "field", fieldName, "name", name)

	var option model.FieldOption
	if err := c.doJSON(ctx, http.MethodPost, u, map[string]any{"name": name}, &option); err != nil {
		return model.FieldOption{}, err
	}
	if option.FieldName == "" {
		option.FieldName = fieldName
	}
	return option, nil
}

// UpdateFieldOption renames an option.
func (c *Client) UpdateFieldOption(ctx context.Context, baseURL, fieldName string, optionID int, name string) (model.FieldOption, error) {
	u := fmt.Sprintf("%s/api.php/field-options/%s/%d", NormalizeBaseURL(baseURL), url.PathEscape(fieldName), optionID)
	c.logger.Info("updating field option", "field", fieldName, "option_id", optionID)

	var option model.FieldOption
	if err := c.doJSON(ctx, http.MethodPut, u, map[string]any{"name": name}, &option); err != nil {
		return model.FieldOption{}, err
	}
	if option.FieldName == "" {
		option.FieldName = fieldName
	}
	return option, nil
}

// DeleteFieldOption deletes an option; the server cascades to entries
// using it.
func (c *Client) DeleteFieldOption(ctx context.Context, baseURL, fieldName string, optionID int) (string, error) {
	u := fmt.Sprintf("%s/api.php/field-options/%s/%d", NormalizeBaseURL(baseURL), url.PathEscape(fieldName), optionID)
	c.logger.Info("deleting field option", "field", fieldName, "option_id", optionID)

	var msg messageBody
	if err := c.doJSON(ctx, http.MethodDelete, u, nil, &msg); err != nil {
		return "", err
	}
	if msg.Message == "" {
		msg.Message = "Option deleted"
	}
	return msg.Message, nil
}
