package handlers

import (
	"log"
	"net/http"
	"strings"

	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

// ContactHandler handles contact-form submissions
type ContactHandler struct {
	email *utils.EmailService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(email *utils.EmailService) *ContactHandler {
	return &ContactHandler{email: email}
}

// Contact handles POST /api/contact
// @Summary Send a contact-form message to the operator
// @Tags contact
// @Accept json
// @Produce json
// @Param payload body dto.ContactRequest true "Contact message"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/contact [post]
func (h *ContactHandler) Contact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ContactRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "name, email, message are required")
		return
	}

	// Synchronous send, no retry; the user re-submits on failure
	if err := h.email.SendContactMessage(req.Name, req.Email, req.Message); err != nil {
		log.Printf("contact email failed: %v", err)
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Failed to send message", "Could not deliver your message right now. Please try again later.")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Message sent. We will get back to you soon."})
}
