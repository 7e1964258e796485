package models

import "time"

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// Employee represents an employee record
type Employee struct {
	ID         int64      `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Email      string     `json:"email" db:"email"`
	Position   *string    `json:"position,omitempty" db:"position"`
	Department *string    `json:"department,omitempty" db:"department"`
	StartDate  *time.Time `json:"start_date,omitempty" db:"start_date"`
}

// EmployeeResponse is the API representation of an employee, with calendar
// dates rendered as YYYY-MM-DD strings
type EmployeeResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	StartDate  *string `json:"start_date"`
}

// ToResponse converts an employee row into its API shape
func (e *Employee) ToResponse() EmployeeResponse {
	var startDate *string
	if e.StartDate != nil {
		formatted := e.StartDate.Format(DateLayout)
		startDate = &formatted
	}

	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		StartDate:  startDate,
	}
}

// CreateEmployeeRequest represents the request to create a new employee
type CreateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // Format: YYYY-MM-DD
}

// EmployeeFilter holds the optional list filters, combined with AND
type EmployeeFilter struct {
	Department     *string
	StartDateAfter *time.Time // inclusive lower bound
}

// EmployeeListResponse wraps a page of employees with pagination metadata.
// Total counts all matching rows regardless of limit and offset.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}
