package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snapshot/storefront/internal/api/metrics"
	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
)

type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type contactResponse struct {
	Message string                 `json:"message"`
	Contact *domain.ContactMessage `json:"contact"`
}

// Create stores a contact-form submission.
//
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}

	msg, err := h.service.Submit(c.Request().Context(), ports.ContactInput(req))
	if err != nil {
		return err
	}

	metrics.ContactMessagesTotal.Inc()
	return c.JSON(http.StatusCreated, contactResponse{Message: "Message sent successfully", Contact: msg})
}

// List returns every contact message, newest first.
//
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Success      200  {array}   domain.ContactMessage
// @Failure      500  {object}  map[string]string
// @Router       /api/contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	msgs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}
