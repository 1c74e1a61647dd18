package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vaxtrack/internal/delivery/http/middleware"
	"vaxtrack/internal/delivery/http/response"
	"vaxtrack/internal/domain/entity"
	"vaxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const birthDateLayout = "2006-01-02"

// ChildHandler exposes the child registry. Every route runs behind
// Authenticate; ownership is enforced below in the scoped repositories.
type ChildHandler struct {
	uc     usecase.ChildUsecase
	logger *slog.Logger
}

// NewChildHandler is the constructor for ChildHandler, injected by Fx.
func NewChildHandler(uc usecase.ChildUsecase, logger *slog.Logger) *ChildHandler {
	return &ChildHandler{
		uc:     uc,
		logger: logger,
	}
}

type childRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	BirthDate   string `json:"birth_date" validate:"required"`
	Sex         string `json:"sex" validate:"required,oneof=male female other"`
	BirthCertNo string `json:"birth_cert_no" validate:"omitempty,max=32"`
}

type childResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"`
	Sex         string `json:"sex"`
	BirthCertNo string `json:"birth_cert_no,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func toChildResponse(child *entity.Child) childResponse {
	return childResponse{
		ID:          child.ID.String(),
		Name:        child.Name,
		BirthDate:   child.BirthDate.Format(birthDateLayout),
		Sex:         child.Sex,
		BirthCertNo: child.BirthCertNo,
		CreatedAt:   child.CreatedAt.Format(time.RFC3339),
	}
}

// CreateChild registers a child under the calling guardian. The owner is
// always the caller; there is no way to create a child for someone else.
func (h *ChildHandler) CreateChild(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	var req childRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid child input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "birth_date must be YYYY-MM-DD")
	}

	child, err := h.uc.CreateChild(c.Request().Context(), &usecase.CreateChildInput{
		Scope:       scope,
		Name:        req.Name,
		BirthDate:   birthDate,
		Sex:         req.Sex,
		BirthCertNo: req.BirthCertNo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toChildResponse(child), "Child registered successfully")
}

// GetChild returns one child visible to the caller.
func (h *ChildHandler) GetChild(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid child id")
	}

	child, err := h.uc.GetChild(c.Request().Context(), scope, childID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toChildResponse(child), "Child retrieved successfully")
}

// ListChildren returns every child owned by the caller.
func (h *ChildHandler) ListChildren(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	children, err := h.uc.ListChildren(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]childResponse, 0, len(children))
	for _, child := range children {
		resp = append(resp, toChildResponse(child))
	}

	return response.Success(c, http.StatusOK, resp, "Children retrieved successfully")
}

type updateChildRequest struct {
	Name        string `json:"name" validate:"omitempty,max=100"`
	BirthDate   string `json:"birth_date" validate:"omitempty"`
	Sex         string `json:"sex" validate:"omitempty,oneof=male female other"`
	BirthCertNo string `json:"birth_cert_no" validate:"omitempty,max=32"`
}

// UpdateChild updates the provided fields of a child visible to the caller.
func (h *ChildHandler) UpdateChild(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid child id")
	}

	var req updateChildRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid child input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateChildInput{
		Scope:       scope,
		ChildID:     childID,
		Name:        req.Name,
		Sex:         req.Sex,
		BirthCertNo: req.BirthCertNo,
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "birth_date must be YYYY-MM-DD")
		}
		input.BirthDate = birthDate
	}

	child, err := h.uc.UpdateChild(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toChildResponse(child), "Child updated successfully")
}

// DeleteChild removes a child and its records.
func (h *ChildHandler) DeleteChild(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid child id")
	}

	if err := h.uc.DeleteChild(c.Request().Context(), scope, childID, c.RealIP()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Child deleted"}, "Child deleted successfully")
}

// GetCardQR streams the immunization card QR code as a PNG.
func (h *ChildHandler) GetCardQR(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid child id")
	}

	png, err := h.uc.GenerateCardQR(c.Request().Context(), scope, childID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
