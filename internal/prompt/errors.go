package prompt

import (
	"fmt"

	"github.com/blipee-dev/promptstack/internal/types"
)

// Prompt error codes follow the shared types.Error pattern.
const (
	// Catalog errors
	ErrCodeTemplateNotFound types.ErrorCode = "PROMPT_TEMPLATE_NOT_FOUND"
	ErrCodeTemplateExists   types.ErrorCode = "PROMPT_TEMPLATE_EXISTS"
	ErrCodeInvalidTemplate  types.ErrorCode = "PROMPT_TEMPLATE_INVALID"

	// Provider errors
	ErrCodeUnknownProvider types.ErrorCode = "PROMPT_PROVIDER_UNKNOWN"

	// YAML catalog errors
	ErrCodeCatalogParse      types.ErrorCode = "PROMPT_CATALOG_PARSE_FAILED"
	ErrCodeCatalogValidation types.ErrorCode = "PROMPT_CATALOG_VALIDATION_FAILED"
)

// NewTemplateNotFoundError creates an error for when a template is not in the catalog.
func NewTemplateNotFoundError(id string) error {
	return types.NewError(ErrCodeTemplateNotFound, fmt.Sprintf("template not found: %s", id))
}

// NewTemplateExistsError creates an error for duplicate template registration.
func NewTemplateExistsError(id string) error {
	return types.NewError(ErrCodeTemplateExists, fmt.Sprintf("template already registered: %s", id))
}

// NewUnknownProviderError creates the error that fails a build for an
// unrecognized provider identifier. This is the only condition that
// aborts the pipeline.
func NewUnknownProviderError(provider string) error {
	return types.NewError(
		ErrCodeUnknownProvider,
		fmt.Sprintf("unsupported provider %q: no token ceiling configured", provider),
	)
}

// NewCatalogParseError creates an error for YAML catalog parsing failures.
func NewCatalogParseError(path string, cause error) error {
	return types.WrapError(
		ErrCodeCatalogParse,
		fmt.Sprintf("failed to parse catalog file: %s", path),
		cause,
	)
}

// NewCatalogValidationError creates an error for YAML catalog validation failures.
func NewCatalogValidationError(path, reason string) error {
	return types.NewError(
		ErrCodeCatalogValidation,
		fmt.Sprintf("catalog validation failed for %s: %s", path, reason),
	)
}
