package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shiftdesk/employee-management-backend/internal/models"
)

// WorkShiftRepository handles database operations for work shifts
type WorkShiftRepository struct {
	db DB
}

// NewWorkShiftRepository creates a new WorkShiftRepository
func NewWorkShiftRepository(db DB) *WorkShiftRepository {
	return &WorkShiftRepository{db: db}
}

// GetByEmployeeAndDay retrieves the work shift for an employee on one day.
// Returns sql.ErrNoRows when no shift exists for the pair.
func (r *WorkShiftRepository) GetByEmployeeAndDay(employeeID int64, workDay time.Time) (*models.WorkShift, error) {
	query := `
		SELECT id, employee_id, work_day, shift
		FROM work_shifts
		WHERE employee_id = $1 AND work_day = $2
	`

	shift := &models.WorkShift{}
	if err := r.db.Get(shift, query, employeeID, workDay); err != nil {
		return nil, err
	}

	return shift, nil
}

// Create inserts a new work shift and fills in its assigned ID
func (r *WorkShiftRepository) Create(shift *models.WorkShift) error {
	query := `
		INSERT INTO work_shifts (employee_id, work_day, shift)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(query, shift.EmployeeID, shift.WorkDay, shift.Shift).Scan(&shift.ID)
	if err != nil {
		return fmt.Errorf("failed to create work shift: %w", err)
	}

	return nil
}

// UpdateShift persists a new label for an existing shift.
// The label is the only mutable field on a work shift.
func (r *WorkShiftRepository) UpdateShift(shift *models.WorkShift, label models.ShiftType) error {
	query := `UPDATE work_shifts SET shift = $1 WHERE id = $2`

	if _, err := r.db.Exec(query, label, shift.ID); err != nil {
		return fmt.Errorf("failed to update work shift: %w", err)
	}

	shift.Shift = label
	return nil
}

// Upsert creates the shift for (employeeID, workDay) or updates the label of
// the existing one, reporting the outcome as "created" or "updated".
// The lookup and the insert are separate statements; when two requests race
// on the same pair, the unique (employee_id, work_day) constraint rejects the
// losing insert and that request collapses to an update.
func (r *WorkShiftRepository) Upsert(employeeID int64, workDay time.Time, label models.ShiftType) (*models.WorkShift, string, error) {
	existing, err := r.GetByEmployeeAndDay(employeeID, workDay)
	if err == nil {
		if err := r.UpdateShift(existing, label); err != nil {
			return nil, "", err
		}
		return existing, models.UpsertUpdated, nil
	}
	if err != sql.ErrNoRows {
		return nil, "", fmt.Errorf("failed to look up work shift: %w", err)
	}

	shift := &models.WorkShift{
		EmployeeID: employeeID,
		WorkDay:    workDay,
		Shift:      label,
	}

	err = r.Create(shift)
	if err == nil {
		return shift, models.UpsertCreated, nil
	}
	if !isUniqueViolation(err) {
		return nil, "", err
	}

	// Lost the race: another request created the row between the lookup and
	// the insert, so re-read it and update the label instead.
	existing, err = r.GetByEmployeeAndDay(employeeID, workDay)
	if err != nil {
		return nil, "", fmt.Errorf("failed to reload work shift: %w", err)
	}
	if err := r.UpdateShift(existing, label); err != nil {
		return nil, "", err
	}

	return existing, models.UpsertUpdated, nil
}
