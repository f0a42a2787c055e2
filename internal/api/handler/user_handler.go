package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/snapshot/storefront/internal/api/metrics"
	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
	"github.com/snapshot/storefront/internal/infrastructure/export"
)

type UserHandler struct {
	auth  ports.AuthService
	admin ports.AdminService
}

func NewUserHandler(auth ports.AuthService, admin ports.AdminService) *UserHandler {
	return &UserHandler{auth: auth, admin: admin}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// Signup creates a new account.
//
// @Summary      Sign up
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}

	user, err := h.auth.Signup(c.Request().Context(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, userResponse{Message: "User registered successfully", User: user})
}

// Login verifies credentials and returns the account.
//
// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}

	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		case domain.KindOf(err) != domain.KindValidation:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, userResponse{Message: "Login successful", User: user})
}

// Get returns a single account.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.auth.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers returns every account.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        x-user-id  header    string  true  "Caller id"
// @Success      200        {array}   domain.User
// @Failure      401        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Router       /api/users/admin/users-list [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context(), callerID(c))
	if err != nil {
		return err
	}

	metrics.AdminActionsTotal.WithLabelValues("list_users").Inc()
	return c.JSON(http.StatusOK, users)
}

// ToggleAdmin flips a user's admin flag.
//
// @Summary      Toggle admin
// @Tags         admin
// @Produce      json
// @Param        x-user-id  header    string  true  "Caller id"
// @Param        id         path      string  true  "Target user id"
// @Success      200        {object}  userResponse
// @Failure      401        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/users/admin/users/{id}/toggle-admin [put]
func (h *UserHandler) ToggleAdmin(c echo.Context) error {
	user, err := h.admin.ToggleAdmin(c.Request().Context(), callerID(c), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.AdminActionsTotal.WithLabelValues("toggle_admin").Inc()
	return c.JSON(http.StatusOK, userResponse{Message: "Admin status updated", User: user})
}

// Delete removes a user.
//
// @Summary      Delete user
// @Tags         admin
// @Produce      json
// @Param        x-user-id  header    string  true  "Caller id"
// @Param        id         path      string  true  "Target user id"
// @Success      200        {object}  userResponse
// @Failure      401        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/users/admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := h.admin.DeleteUser(c.Request().Context(), callerID(c), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.AdminActionsTotal.WithLabelValues("delete_user").Inc()
	return c.JSON(http.StatusOK, userResponse{Message: "User deleted successfully", User: user})
}

// ExportOrders downloads all orders as a spreadsheet.
//
// @Summary      Export orders
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        x-user-id  header  string  true  "Caller id"
// @Success      200
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/users/admin/export/orders [get]
func (h *UserHandler) ExportOrders(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.admin.ExportOrders(c.Request().Context(), callerID(c), &buf); err != nil {
		return err
	}

	metrics.AdminActionsTotal.WithLabelValues("export_orders").Inc()
	return sendWorkbook(c, "orders", &buf)
}

// ExportContacts downloads all contact messages as a spreadsheet.
//
// @Summary      Export contact messages
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        x-user-id  header  string  true  "Caller id"
// @Success      200
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/users/admin/export/contacts [get]
func (h *UserHandler) ExportContacts(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.admin.ExportContacts(c.Request().Context(), callerID(c), &buf); err != nil {
		return err
	}

	metrics.AdminActionsTotal.WithLabelValues("export_contacts").Inc()
	return sendWorkbook(c, "contacts", &buf)
}

// sendWorkbook is only reached once the workbook is fully rendered, so a
// failed export still produces a JSON error.
func sendWorkbook(c echo.Context, name string, buf *bytes.Buffer) error {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().UTC().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}
