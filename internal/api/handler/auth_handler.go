package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smatech/auth-service/internal/api/metrics"
	"github.com/smatech/auth-service/internal/core/domain"
	"github.com/smatech/auth-service/internal/core/ports"
)

// AuthHandler translates transport requests into engine calls. All failures
// flow to the central error handler; only success shapes are rendered here.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new customer account.
//
// @Summary      Register a customer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  api.errorResponse
// @Failure      409   {object}  api.errorResponse
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	return h.register(c, domain.RoleCustomer)
}

// RegisterAdmin creates a new admin account.
//
// @Summary      Register an admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  api.errorResponse
// @Failure      409   {object}  api.errorResponse
// @Router       /api/v1/auth/register-admin [post]
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	return h.register(c, domain.RoleAdmin)
}

// register is the single data-driven registration path; the role comes from
// the entry point that was hit, never from the request body.
func (h *AuthHandler) register(c echo.Context, role domain.Role) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	result, err := h.authService.Register(c.Request().Context(), in, role)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()

	return c.JSON(http.StatusCreated, authResponse{Success: true, Token: result.Token})
}

// Authenticate verifies credentials and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authenticateRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  api.errorResponse
// @Failure      401   {object}  api.errorResponse
// @Router       /api/v1/auth/authenticate [post]
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req authenticateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{Success: true, Token: result.Token, Data: result.User})
}

// GetCustomers lists every customer.
//
// @Summary      List customers
// @Tags         users
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/v1/auth/get-customers [get]
func (h *AuthHandler) GetCustomers(c echo.Context) error {
	return h.listUsers(c, domain.RoleCustomer)
}

// GetAdmins lists every admin.
//
// @Summary      List admins
// @Tags         users
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/v1/auth/get-admins [get]
func (h *AuthHandler) GetAdmins(c echo.Context) error {
	return h.listUsers(c, domain.RoleAdmin)
}

func (h *AuthHandler) listUsers(c echo.Context, role domain.Role) error {
	users, err := h.authService.GetUsers(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Success: true, Data: users})
}

// GetCustomer looks up one customer by id. Role scoping is a hard filter: an
// admin id is not found here.
//
// @Summary      Get a customer by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  authResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/v1/auth/get-user/{id} [get]
func (h *AuthHandler) GetCustomer(c echo.Context) error {
	return h.getUserByID(c, domain.RoleCustomer)
}

// GetAdmin looks up one admin by id.
//
// @Summary      Get an admin by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  authResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/v1/auth/get-admin/{id} [get]
func (h *AuthHandler) GetAdmin(c echo.Context) error {
	return h.getUserByID(c, domain.RoleAdmin)
}

func (h *AuthHandler) getUserByID(c echo.Context, role domain.Role) error {
	user, err := h.authService.GetUserByID(c.Request().Context(), c.Param("id"), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Success: true, Data: user})
}

// Roles returns the closed role set. No authentication required.
//
// @Summary      List roles
// @Tags         auth
// @Produce      json
// @Success      200  {object}  rolesResponse
// @Router       /api/v1/auth/roles [get]
func (h *AuthHandler) Roles(c echo.Context) error {
	return c.JSON(http.StatusOK, rolesResponse{Success: true, Data: domain.Roles()})
}

// UpdateUser applies a partial profile update to a customer record.
//
// @Summary      Update a customer profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  api.errorResponse
// @Failure      404   {object}  api.errorResponse
// @Router       /api/v1/auth/update-user/{id} [patch]
func (h *AuthHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	in := ports.UpdateUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	user, err := h.authService.UpdateUser(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Success: true, Data: user})
}
