package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/shiftdesk/employee-management-backend/internal/models"
)

// ErrDuplicateEmail is returned when an insert trips the unique email constraint
var ErrDuplicateEmail = errors.New("email already registered")

// Postgres unique_violation
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts a new employee and fills in its assigned ID.
// The unique constraint on email is the authoritative duplicate guard; a
// violation is reported as ErrDuplicateEmail so callers can surface the same
// conflict error as the pre-check path.
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	query := `
		INSERT INTO employees (name, email, position, department, start_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(
		query,
		employee.Name, employee.Email, employee.Position,
		employee.Department, employee.StartDate,
	).Scan(&employee.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// GetByEmail retrieves the employee with that exact email.
// Returns sql.ErrNoRows when no such employee exists.
func (r *EmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	query := `
		SELECT id, name, email, position, department, start_date
		FROM employees
		WHERE email = $1
	`

	employee := &models.Employee{}
	if err := r.db.Get(employee, query, email); err != nil {
		return nil, err
	}

	return employee, nil
}

// GetByID retrieves an employee by ID.
// Returns sql.ErrNoRows when no such employee exists.
func (r *EmployeeRepository) GetByID(id int64) (*models.Employee, error) {
	query := `
		SELECT id, name, email, position, department, start_date
		FROM employees
		WHERE id = $1
	`

	employee := &models.Employee{}
	if err := r.db.Get(employee, query, id); err != nil {
		return nil, err
	}

	return employee, nil
}

// List returns a page of employees matching the filter plus the total count
// of matching rows ignoring pagination. Rows are ordered by id so that
// limit/offset walk a stable sequence.
func (r *EmployeeRepository) List(filter models.EmployeeFilter, limit, offset int) ([]models.Employee, int, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.Department != nil {
		args = append(args, *filter.Department)
		conditions = append(conditions, fmt.Sprintf("department = $%d", len(args)))
	}
	if filter.StartDateAfter != nil {
		args = append(args, *filter.StartDateAfter)
		conditions = append(conditions, fmt.Sprintf("start_date >= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Total is computed over the filtered set before pagination is applied
	var total int
	if err := r.db.Get(&total, "SELECT COUNT(*) FROM employees"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, email, position, department, start_date
		FROM employees%s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	employees := []models.Employee{}
	if err := r.db.Select(&employees, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, total, nil
}
