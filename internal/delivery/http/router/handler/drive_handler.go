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

// DriveHandler exposes the shared vaccination drive catalog. Reads are open
// to every authenticated user; writes sit behind RequireAdmin in the router.
type DriveHandler struct {
	uc     usecase.DriveUsecase
	logger *slog.Logger
}

// NewDriveHandler is the constructor for DriveHandler, injected by Fx.
func NewDriveHandler(uc usecase.DriveUsecase, logger *slog.Logger) *DriveHandler {
	return &DriveHandler{
		uc:     uc,
		logger: logger,
	}
}

type driveRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	VaccineName string `json:"vaccine_name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Location    string `json:"location" validate:"required,max=255"`
	StartsAt    string `json:"starts_at" validate:"required"`
	EndsAt      string `json:"ends_at" validate:"required"`
}

type driveResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	VaccineName string `json:"vaccine_name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	Active      bool   `json:"active"`
}

func toDriveResponse(drive *entity.VaccineDrive) driveResponse {
	return driveResponse{
		ID:          drive.ID.String(),
		Title:       drive.Title,
		VaccineName: drive.VaccineName,
		Description: drive.Description,
		Location:    drive.Location,
		StartsAt:    drive.StartsAt.Format(time.RFC3339),
		EndsAt:      drive.EndsAt.Format(time.RFC3339),
		Active:      drive.Active,
	}
}

// CreateDrive publishes a new drive to the catalog.
func (h *DriveHandler) CreateDrive(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	var req driveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid drive input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	startsAt, endsAt, err := parseDriveWindow(req.StartsAt, req.EndsAt)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	drive, err := h.uc.CreateDrive(c.Request().Context(), &usecase.CreateDriveInput{
		Scope:       scope,
		Title:       req.Title,
		VaccineName: req.VaccineName,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toDriveResponse(drive), "Drive created successfully")
}

// GetDrive returns one drive from the catalog.
func (h *DriveHandler) GetDrive(c echo.Context) error {
	driveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid drive id")
	}

	drive, err := h.uc.GetDrive(c.Request().Context(), driveID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDriveResponse(drive), "Drive retrieved successfully")
}

// ListDrives returns the active drives, soonest first.
func (h *DriveHandler) ListDrives(c echo.Context) error {
	drives, err := h.uc.ListActiveDrives(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]driveResponse, 0, len(drives))
	for _, drive := range drives {
		resp = append(resp, toDriveResponse(drive))
	}

	return response.Success(c, http.StatusOK, resp, "Drives retrieved successfully")
}

type updateDriveRequest struct {
	Title       string `json:"title" validate:"omitempty,max=255"`
	VaccineName string `json:"vaccine_name" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Location    string `json:"location" validate:"omitempty,max=255"`
	StartsAt    string `json:"starts_at" validate:"omitempty"`
	EndsAt      string `json:"ends_at" validate:"omitempty"`
	Active      *bool  `json:"active" validate:"omitempty"`
}

// UpdateDrive updates the provided drive fields.
func (h *DriveHandler) UpdateDrive(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	driveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid drive id")
	}

	var req updateDriveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid drive input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	current, err := h.uc.GetDrive(c.Request().Context(), driveID)
	if err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateDriveInput{
		Scope:       scope,
		DriveID:     driveID,
		Title:       req.Title,
		VaccineName: req.VaccineName,
		Description: req.Description,
		Location:    req.Location,
		Active:      current.Active,
	}
	if req.StartsAt != "" {
		startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "starts_at must be RFC3339")
		}
		input.StartsAt = startsAt
	}
	if req.EndsAt != "" {
		endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "ends_at must be RFC3339")
		}
		input.EndsAt = endsAt
	}
	if req.Active != nil {
		input.Active = *req.Active
	}

	drive, err := h.uc.UpdateDrive(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDriveResponse(drive), "Drive updated successfully")
}

type announceResponse struct {
	NotifiedGuardians int `json:"notified_guardians"`
	PushSuccess       int `json:"push_success"`
	PushFailure       int `json:"push_failure"`
}

// AnnounceDrive fans the drive out to every guardian's inbox and device.
func (h *DriveHandler) AnnounceDrive(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	driveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid drive id")
	}

	output, err := h.uc.AnnounceDrive(c.Request().Context(), scope, driveID, c.RealIP())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, announceResponse{
		NotifiedGuardians: output.NotifiedGuardians,
		PushSuccess:       output.PushSuccess,
		PushFailure:       output.PushFailure,
	}, "Drive announced successfully")
}

func parseDriveWindow(startsAtRaw, endsAtRaw string) (time.Time, time.Time, error) {
	startsAt, err := time.Parse(time.RFC3339, startsAtRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("starts_at must be RFC3339")
	}

	endsAt, err := time.Parse(time.RFC3339, endsAtRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("ends_at must be RFC3339")
	}

	if !endsAt.After(startsAt) {
		return time.Time{}, time.Time{}, errors.New("ends_at must be after starts_at")
	}

	return startsAt, endsAt, nil
}
