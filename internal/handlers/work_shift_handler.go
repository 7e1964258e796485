package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiftdesk/employee-management-backend/internal/database"
	"github.com/shiftdesk/employee-management-backend/internal/models"
)

// WorkShiftHandler handles work shift endpoints
type WorkShiftHandler struct {
	workShiftRepo *database.WorkShiftRepository
	employeeRepo  *database.EmployeeRepository
}

// NewWorkShiftHandler creates a new WorkShiftHandler
func NewWorkShiftHandler(workShiftRepo *database.WorkShiftRepository, employeeRepo *database.EmployeeRepository) *WorkShiftHandler {
	return &WorkShiftHandler{
		workShiftRepo: workShiftRepo,
		employeeRepo:  employeeRepo,
	}
}

// UpsertWorkShift creates or updates the work shift for an employee on a day.
// The first request for a pair reports "created", later ones "updated".
// POST /workshifts/
func (h *WorkShiftHandler) UpsertWorkShift(c *gin.Context) {
	var req models.CreateWorkShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	// Validate guarantees the date parses
	workDay, _ := time.Parse(models.DateLayout, req.WorkDay)

	if _, err := h.employeeRepo.GetByID(req.EmployeeID); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify employee"})
		return
	}

	shift, status, err := h.workShiftRepo.Upsert(req.EmployeeID, workDay, models.ShiftType(req.Shift))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save work shift"})
		return
	}

	c.JSON(http.StatusOK, models.WorkShiftUpsertResponse{
		Status:    status,
		WorkShift: shift.ToResponse(),
	})
}
