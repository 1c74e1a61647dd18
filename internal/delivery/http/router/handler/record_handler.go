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

// RecordHandler exposes vaccine record CRUD. Access to a record is
// transitive through the child's guardian.
type RecordHandler struct {
	uc     usecase.RecordUsecase
	logger *slog.Logger
}

// NewRecordHandler is the constructor for RecordHandler, injected by Fx.
func NewRecordHandler(uc usecase.RecordUsecase, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		uc:     uc,
		logger: logger,
	}
}

type recordRequest struct {
	VaccineName    string `json:"vaccine_name" validate:"required,max=100"`
	DoseNumber     int    `json:"dose_number" validate:"required,min=1,max=10"`
	AdministeredAt string `json:"administered_at" validate:"required"`
	AdministeredBy string `json:"administered_by" validate:"omitempty,max=255"`
	DriveID        string `json:"drive_id" validate:"omitempty,uuid"`
	Notes          string `json:"notes" validate:"omitempty,max=1000"`
}

type recordResponse struct {
	ID             string `json:"id"`
	ChildID        string `json:"child_id"`
	VaccineName    string `json:"vaccine_name"`
	DoseNumber     int    `json:"dose_number"`
	AdministeredAt string `json:"administered_at"`
	AdministeredBy string `json:"administered_by,omitempty"`
	DriveID        string `json:"drive_id,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

func toRecordResponse(record *entity.VaccineRecord) recordResponse {
	resp := recordResponse{
		ID:             record.ID.String(),
		ChildID:        record.ChildID.String(),
		VaccineName:    record.VaccineName,
		DoseNumber:     record.DoseNumber,
		AdministeredAt: record.AdministeredAt.Format(birthDateLayout),
		AdministeredBy: record.AdministeredBy,
		Notes:          record.Notes,
	}
	if record.DriveID != nil {
		resp.DriveID = record.DriveID.String()
	}

	return resp
}

// AddRecord records an administered dose for a child visible to the caller.
func (h *RecordHandler) AddRecord(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	childID, err := uuid.Parse(c.Param("childID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid child id")
	}

	var req recordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid record input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	administeredAt, err := time.Parse(birthDateLayout, req.AdministeredAt)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "administered_at must be YYYY-MM-DD")
	}

	input := &usecase.AddRecordInput{
		Scope:          scope,
		ChildID:        childID,
		VaccineName:    req.VaccineName,
		DoseNumber:     req.DoseNumber,
		AdministeredAt: administeredAt,
		AdministeredBy: req.AdministeredBy,
		Notes:          req.Notes,
	}
	if req.DriveID != "" {
		driveID, err := uuid.Parse(req.DriveID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid drive id")
		}
		input.DriveID = &driveID
	}

	record, err := h.uc.AddRecord(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRecordResponse(record), "Record added successfully")
}

// ListRecords returns the dose history of one child.
func (h *RecordHandler) ListRecords(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	childID, err := uuid.Parse(c.Param("childID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid child id")
	}

	records, err := h.uc.ListRecords(c.Request().Context(), scope, childID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]recordResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, toRecordResponse(record))
	}

	return response.Success(c, http.StatusOK, resp, "Records retrieved successfully")
}

// GetRecord returns a single record visible to the caller.
func (h *RecordHandler) GetRecord(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	record, err := h.uc.GetRecord(c.Request().Context(), scope, recordID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRecordResponse(record), "Record retrieved successfully")
}

type updateRecordRequest struct {
	VaccineName    string `json:"vaccine_name" validate:"omitempty,max=100"`
	DoseNumber     int    `json:"dose_number" validate:"omitempty,min=1,max=10"`
	AdministeredAt string `json:"administered_at" validate:"omitempty"`
	AdministeredBy string `json:"administered_by" validate:"omitempty,max=255"`
	DriveID        string `json:"drive_id" validate:"omitempty,uuid"`
	Notes          string `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateRecord updates the provided fields of a record.
func (h *RecordHandler) UpdateRecord(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	var req updateRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid record input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateRecordInput{
		Scope:          scope,
		RecordID:       recordID,
		VaccineName:    req.VaccineName,
		DoseNumber:     req.DoseNumber,
		AdministeredBy: req.AdministeredBy,
		Notes:          req.Notes,
	}
	if req.AdministeredAt != "" {
		administeredAt, err := time.Parse(birthDateLayout, req.AdministeredAt)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "administered_at must be YYYY-MM-DD")
		}
		input.AdministeredAt = administeredAt
	}
	if req.DriveID != "" {
		driveID, err := uuid.Parse(req.DriveID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid drive id")
		}
		input.DriveID = &driveID
	}

	record, err := h.uc.UpdateRecord(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRecordResponse(record), "Record updated successfully")
}

// DeleteRecord removes one record.
func (h *RecordHandler) DeleteRecord(c echo.Context) error {
	scope, err := middleware.MustScope(c)
	if err != nil {
		return err
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid record id")
	}

	if err := h.uc.DeleteRecord(c.Request().Context(), scope, recordID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Record deleted"}, "Record deleted successfully")
}
