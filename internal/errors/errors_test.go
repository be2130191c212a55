package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"duplicate identity", ErrDuplicateIdentity, http.StatusConflict, "DUPLICATE_IDENTITY"},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"no search results", &NoResultsError{Query: "zzz"}, http.StatusNotFound, "NO_SEARCH_RESULTS"},
		{"upstream unavailable", ErrUpstreamUnavailable, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
		{"wrapped upstream unavailable", fmt.Errorf("%w: boom", ErrUpstreamUnavailable), http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestNoResultsError_Message(t *testing.T) {
	err := &NoResultsError{Query: "zzz-nonexistent"}
	assert.Equal(t, `no results found for "zzz-nonexistent"`, err.Error())
}
