package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"TRAVELPLANNER_BACK-END/internal/config"
	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

func TestContactValidation(t *testing.T) {
	h := NewContactHandler(utils.NewEmailService(&config.EmailConfig{}))

	tests := []struct {
		name string
		req  dto.ContactRequest
	}{
		{"missing name", dto.ContactRequest{Email: "a@b.c", Message: "hi"}},
		{"missing email", dto.ContactRequest{Name: "Ann", Message: "hi"}},
		{"missing message", dto.ContactRequest{Name: "Ann", Email: "a@b.c"}},
		{"whitespace only", dto.ContactRequest{Name: "  ", Email: "a@b.c", Message: "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Contact(rec, authedRequest(t, http.MethodPost, "/api/contact", uuid.New(), tt.req))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestContactMethodNotAllowed(t *testing.T) {
	h := NewContactHandler(utils.NewEmailService(&config.EmailConfig{}))

	rec := httptest.NewRecorder()
	h.Contact(rec, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
