package models

import (
	"errors"
	"time"
)

// ShiftType represents which part of the day an employee works
type ShiftType string

const (
	ShiftMorning   ShiftType = "morning"
	ShiftAfternoon ShiftType = "afternoon"
	ShiftFullDay   ShiftType = "full_day"
)

// IsValid reports whether the shift is one of the three known values
func (s ShiftType) IsValid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftFullDay:
		return true
	}
	return false
}

// Upsert outcome labels
const (
	UpsertCreated = "created"
	UpsertUpdated = "updated"
)

// WorkShift represents the shift worked by an employee on one calendar day.
// There is at most one row per (employee_id, work_day) pair.
type WorkShift struct {
	ID         int64     `json:"id" db:"id"`
	EmployeeID int64     `json:"employee_id" db:"employee_id"`
	WorkDay    time.Time `json:"work_day" db:"work_day"`
	Shift      ShiftType `json:"shift" db:"shift"`
}

// WorkShiftResponse is the API representation of a work shift
type WorkShiftResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	WorkDay    string    `json:"work_day"`
	Shift      ShiftType `json:"shift"`
}

// ToResponse converts a work shift row into its API shape
func (ws *WorkShift) ToResponse() WorkShiftResponse {
	return WorkShiftResponse{
		ID:         ws.ID,
		EmployeeID: ws.EmployeeID,
		WorkDay:    ws.WorkDay.Format(DateLayout),
		Shift:      ws.Shift,
	}
}

// CreateWorkShiftRequest represents the request to create or update a work shift
type CreateWorkShiftRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required"`
	WorkDay    string `json:"work_day" binding:"required"` // Format: YYYY-MM-DD
	Shift      string `json:"shift" binding:"required"`
}

// Validate validates the CreateWorkShiftRequest
func (req *CreateWorkShiftRequest) Validate() error {
	if _, err := time.Parse(DateLayout, req.WorkDay); err != nil {
		return errors.New("work_day must be in YYYY-MM-DD format")
	}

	if !ShiftType(req.Shift).IsValid() {
		return errors.New("invalid shift: must be morning, afternoon, or full_day")
	}

	return nil
}

// WorkShiftUpsertResponse wraps the resulting shift with the upsert outcome
type WorkShiftUpsertResponse struct {
	Status    string            `json:"status"`
	WorkShift WorkShiftResponse `json:"work_shift"`
}
