package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCampaignError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewCampaignError(ErrTransportFailure, "status 503", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrTransportFailure, e.Code)
	assert.Equal(t, "status 503", e.Message)
	assert.Same(t, inner, e.Inner)
	assert.ErrorIs(t, e, inner)
}

func TestCampaignError_Error(t *testing.T) {
	assert.Equal(t, "malformed_url no path separator", NewMalformedURLError("no path separator", nil).Error())
	assert.Equal(t, "json_parse_failure bad body: boom", NewJSONParseFailure("bad body", errors.New("boom")).Error())
}

func TestClientErrorPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		is   func(error) bool
		code string
	}{
		{name: "transport_failure", err: NewTransportFailure("x", nil), is: IsTransportFailure, code: ErrTransportFailure},
		{name: "malformed_url", err: NewMalformedURLError("x", nil), is: IsMalformedURLError, code: ErrMalformedURL},
		{name: "json_parse_failure", err: NewJSONParseFailure("x", nil), is: IsJSONParseFailure, code: ErrJSONParseFailure},
		{name: "malformed_response", err: NewMalformedResponseError("x", nil), is: IsMalformedResponseError, code: ErrMalformedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.is(tt.err))
			wrapped := fmt.Errorf("dispatch: %w", tt.err)
			assert.True(t, tt.is(wrapped))
			assert.Equal(t, tt.code, ToCampaignErrorCode(wrapped))
		})
	}
}

func TestNewBadParameterError_KeepsInnerCampaignError(t *testing.T) {
	inner := NewEntityNotFoundError("scenario", nil)
	e := NewBadParameterError("wrapper", inner)
	assert.Same(t, inner, e)
	assert.True(t, IsEntityNotFoundError(e))
}

func TestToCampaignError_WithOrdinaryError(t *testing.T) {
	assert.Nil(t, ToCampaignError(errors.New("plain")))
	assert.Equal(t, "", ToCampaignErrorCode(errors.New("plain")))
	assert.False(t, IsBadParameterError(errors.New("plain")))
}
