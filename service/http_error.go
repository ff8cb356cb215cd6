package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler installs the stub server's JSON error renderer on e.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(StatusByErrorCode(), logger).Handler
}

// StatusByErrorCode maps CampaignError codes the stub can produce to HTTP statuses. Unlisted codes are 500.
func StatusByErrorCode() map[string]int {
	return map[string]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrEntityNotFound:      http.StatusNotFound,
		ErrInternalServerError: http.StatusInternalServerError,
	}
}

// HTTPErrorHandler renders handler errors as {"error": {"code", "message"}}.
type HTTPErrorHandler struct {
	statusByCode map[string]int
	logger       log.Logger
}

// NewHTTPErrorHandler creates a handler with the given code → status table.
func NewHTTPErrorHandler(statusByCode map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		statusByCode: statusByCode,
		logger:       log.With(logger, "component", "http_error_handler"),
	}
}

// Handler is an echo.HTTPErrorHandler. Echo errors (unknown route, bind failures, OpenAPI validation) keep their
// status and get a code derived from it; CampaignErrors get the status of their code; anything else is a 500.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	campaignErr, status := h.classify(err)
	logger := log.With(h.logger, "method", c.Request().Method, "path", c.Request().URL.Path, "status", status, "err", err)
	if status >= http.StatusInternalServerError {
		level.Error(logger).Log("msg", "HTTP request error")
	} else {
		level.Warn(logger).Log("msg", "HTTP request rejected")
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrResponse{Error: campaignErr})
}

func (h *HTTPErrorHandler) classify(err error) (*CampaignError, int) {
	if he, ok := err.(*echo.HTTPError); ok {
		if inner, ok := he.Internal.(*echo.HTTPError); ok {
			he = inner
		}
		code := codeForStatus(he.Code)
		var requestErr *openapi3filter.RequestError
		if errors.As(he.Internal, &requestErr) {
			code = ErrBadParameter
		}
		message, _ := he.Message.(string)
		if message == "" {
			message = http.StatusText(he.Code)
		}
		return NewCampaignError(code, message, err), he.Code
	}

	campaignErr := ToCampaignError(err)
	if campaignErr == nil {
		return NewCampaignError(ErrInternalServerError, "an internal server error has occurred", err), http.StatusInternalServerError
	}
	status, ok := h.statusByCode[campaignErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	return campaignErr, status
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return ErrEntityNotFound
	case status >= 400 && status < 500:
		return ErrBadParameter
	default:
		return ErrInternalServerError
	}
}

// ErrResponse is the error body of the stub server.
type ErrResponse struct {
	Error *CampaignError `json:"error,omitempty"`
}
