package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiftdesk/employee-management-backend/internal/database"
	"github.com/shiftdesk/employee-management-backend/internal/models"
	"github.com/shiftdesk/employee-management-backend/pkg/validator"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// EmployeeHandler handles employee endpoints
type EmployeeHandler struct {
	employeeRepo   *database.EmployeeRepository
	emailValidator *validator.EmailValidator
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeRepo *database.EmployeeRepository, emailValidator *validator.EmailValidator) *EmployeeHandler {
	return &EmployeeHandler{
		employeeRepo:   employeeRepo,
		emailValidator: emailValidator,
	}
}

// CreateEmployee creates a new employee
// POST /employees/
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	email, err := h.emailValidator.Validate(req.Email)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	var startDate *time.Time
	if req.StartDate != nil {
		parsed, err := time.Parse(models.DateLayout, *req.StartDate)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "start_date must be in YYYY-MM-DD format"})
			return
		}
		startDate = &parsed
	}

	// Pre-check for a friendlier error message. The unique constraint on
	// email remains the authoritative guard against concurrent duplicates.
	_, err = h.employeeRepo.GetByEmail(email)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}
	if err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing employee"})
		return
	}

	employee := &models.Employee{
		Name:       req.Name,
		Email:      email,
		Position:   req.Position,
		Department: req.Department,
		StartDate:  startDate,
	}

	if err := h.employeeRepo.Create(employee); err != nil {
		if err == database.ErrDuplicateEmail {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	c.JSON(http.StatusOK, employee.ToResponse())
}

// ListEmployees returns employees with optional filters and pagination
// GET /employees/?department=&start_date_after=&limit=&offset=
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxListLimit {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "limit must be an integer between 1 and 1000"})
			return
		}
		limit = parsed
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "offset must be a non-negative integer"})
			return
		}
		offset = parsed
	}

	filter := models.EmployeeFilter{}
	if department := c.Query("department"); department != "" {
		filter.Department = &department
	}
	if raw := c.Query("start_date_after"); raw != "" {
		parsed, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "start_date_after must be in YYYY-MM-DD format"})
			return
		}
		filter.StartDateAfter = &parsed
	}

	employees, total, err := h.employeeRepo.List(filter, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list employees"})
		return
	}

	responses := make([]models.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, employees[i].ToResponse())
	}

	c.JSON(http.StatusOK, models.EmployeeListResponse{
		Employees: responses,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	})
}
