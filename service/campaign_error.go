package service

import (
	"errors"
	"fmt"
)

const (
	// ErrTransportFailure means the campaign server answered with a non-2xx status or could not be reached.
	ErrTransportFailure = "transport_failure"
	// ErrMalformedURL means the legacy base URL could not be split into host and path.
	ErrMalformedURL = "malformed_url"
	// ErrJSONParseFailure means a response body was not valid JSON.
	ErrJSONParseFailure = "json_parse_failure"
	// ErrMalformedResponse means a response was valid JSON but not of the expected shape.
	ErrMalformedResponse = "malformed_response"

	// ErrInternalServerError means that an internal server error has occurred (stub server).
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that a record is absent in the catalog or event store (stub server).
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that a request parameter or body does not match the API (stub server).
	ErrBadParameter = "bad_parameter"
)

// CampaignError represents an error within the campaign client and stub server. Client-side errors are logged and
// absorbed, never returned to facade callers; stub-side errors are rendered by HTTPErrorHandler.
type CampaignError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewCampaignError creates a new CampaignError.
func NewCampaignError(code string, message string, inner error) *CampaignError {
	return &CampaignError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewTransportFailure(message string, inner error) *CampaignError {
	return NewCampaignError(ErrTransportFailure, message, inner)
}

func NewMalformedURLError(message string, inner error) *CampaignError {
	return NewCampaignError(ErrMalformedURL, message, inner)
}

func NewJSONParseFailure(message string, inner error) *CampaignError {
	return NewCampaignError(ErrJSONParseFailure, message, inner)
}

func NewMalformedResponseError(message string, inner error) *CampaignError {
	return NewCampaignError(ErrMalformedResponse, message, inner)
}

func NewInternalServerError(message string, inner error) *CampaignError {
	if campaignInner := ToCampaignError(inner); campaignInner != nil {
		return campaignInner
	}
	return NewCampaignError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *CampaignError {
	if campaignInner := ToCampaignError(inner); campaignInner != nil {
		return campaignInner
	}
	return NewCampaignError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *CampaignError {
	if campaignInner := ToCampaignError(inner); campaignInner != nil {
		return campaignInner
	}
	return NewCampaignError(ErrBadParameter, message, inner)
}

func (e CampaignError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e CampaignError) Unwrap() error {
	return e.Inner
}

// ToCampaignError returns a pointer to a campaign error, or nil if err is not one.
func ToCampaignError(err error) *CampaignError {
	var e *CampaignError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// ToCampaignErrorCode returns the code of the error, if available.
func ToCampaignErrorCode(err error) string {
	if campaignErr := ToCampaignError(err); campaignErr != nil {
		return campaignErr.Code
	}
	return ""
}

func IsCampaignError(err error, code string) bool {
	if campaignErr := ToCampaignError(err); campaignErr != nil {
		return campaignErr.Code == code
	}
	return false
}

func IsTransportFailure(err error) bool {
	return IsCampaignError(err, ErrTransportFailure)
}

func IsMalformedURLError(err error) bool {
	return IsCampaignError(err, ErrMalformedURL)
}

func IsJSONParseFailure(err error) bool {
	return IsCampaignError(err, ErrJSONParseFailure)
}

func IsMalformedResponseError(err error) bool {
	return IsCampaignError(err, ErrMalformedResponse)
}

func IsEntityNotFoundError(err error) bool {
	return IsCampaignError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsCampaignError(err, ErrBadParameter)
}

func IsInternalServerError(err error) bool {
	return IsCampaignError(err, ErrInternalServerError)
}
