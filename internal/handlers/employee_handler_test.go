package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shiftdesk/employee-management-backend/internal/database"
	"github.com/shiftdesk/employee-management-backend/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employeeColumns = []string{"id", "name", "email", "position", "department", "start_date"}

func setupEmployeeRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := &database.PostgresDB{DB: sqlx.NewDb(mockDB, "sqlmock")}
	handler := NewEmployeeHandler(database.NewEmployeeRepository(db), validator.NewEmailValidator())

	router := gin.New()
	router.POST("/employees/", handler.CreateEmployee)
	router.GET("/employees/", handler.ListEmployees)
	return router, mock
}

func performRequest(router *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateEmployee_Success(t *testing.T) {
	router, mock := setupEmployeeRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM employees WHERE email`).
		WithArgs("ann@x.com").
		WillReturnError(sql.ErrNoRows)

	mock.ExpectQuery(`INSERT INTO employees`).
		WithArgs("Ann", "ann@x.com", nil, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	body := []byte(`{"name":"Ann","email":"ann@x.com","start_date":"2024-01-02"}`)
	recorder := performRequest(router, http.MethodPost, "/employees/", body)

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&payload))
	assert.Equal(t, float64(1), payload["id"])
	assert.Equal(t, "Ann", payload["name"])
	assert.Equal(t, "ann@x.com", payload["email"])
	assert.Equal(t, "2024-01-02", payload["start_date"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	router, mock := setupEmployeeRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM employees WHERE email`).
		WithArgs("ann@x.com").
		WillReturnRows(sqlmock.NewRows(employeeColumns).
			AddRow(1, "Ann", "ann@x.com", nil, nil, nil))

	body := []byte(`{"name":"Another Ann","email":"ann@x.com"}`)
	recorder := performRequest(router, http.MethodPost, "/employees/", body)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Email already registered")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_ConstraintRace(t *testing.T) {
	router, mock := setupEmployeeRouter(t)

	// Pre-check passes but a concurrent request wins the insert, so the
	// unique constraint decides and both callers see the same conflict.
	mock.ExpectQuery(`SELECT (.+) FROM employees WHERE email`).
		WithArgs("ann@x.com").
		WillReturnError(sql.ErrNoRows)

	mock.ExpectQuery(`INSERT INTO employees`).
		WithArgs("Ann", "ann@x.com", nil, nil, nil).
		WillReturnError(&pq.Error{Code: "23505"})

	body := []byte(`{"name":"Ann","email":"ann@x.com"}`)
	recorder := performRequest(router, http.MethodPost, "/employees/", body)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Email already registered")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"Missing Name", `{"email":"ann@x.com"}`},
		{"Missing Email", `{"name":"Ann"}`},
		{"Malformed Email", `{"name":"Ann","email":"not-an-email"}`},
		{"Bad Start Date", `{"name":"Ann","email":"ann@x.com","start_date":"02.01.2024"}`},
		{"Invalid JSON", `{"name":`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, mock := setupEmployeeRouter(t)

			recorder := performRequest(router, http.MethodPost, "/employees/", []byte(tc.body))

			assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
			// Validation failures never reach the database
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListEmployees_Success(t *testing.T) {
	router, mock := setupEmployeeRouter(t)

	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees WHERE department = \$1`).
		WithArgs("Eng").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	mock.ExpectQuery(`SELECT (.+) FROM employees WHERE department = \$1 ORDER BY id LIMIT \$2 OFFSET \$3`).
		WithArgs("Eng", 2, 0).
		WillReturnRows(sqlmock.NewRows(employeeColumns).
			AddRow(1, "Ann", "ann@x.com", "Engineer", "Eng", startDate).
			AddRow(2, "Bob", "bob@x.com", nil, "Eng", nil))

	recorder := performRequest(router, http.MethodGet, "/employees/?department=Eng&limit=2", nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		Employees []map[string]interface{} `json:"employees"`
		Total     int                      `json:"total"`
		Limit     int                      `json:"limit"`
		Offset    int                      `json:"offset"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&payload))
	assert.Equal(t, 5, payload.Total)
	assert.Equal(t, 2, payload.Limit)
	assert.Equal(t, 0, payload.Offset)
	require.Len(t, payload.Employees, 2)
	assert.Equal(t, "2024-03-01", payload.Employees[0]["start_date"])
	assert.Nil(t, payload.Employees[1]["start_date"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_Defaults(t *testing.T) {
	router, mock := setupEmployeeRouter(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT (.+) FROM employees ORDER BY id LIMIT \$1 OFFSET \$2`).
		WithArgs(100, 0).
		WillReturnRows(sqlmock.NewRows(employeeColumns))

	recorder := performRequest(router, http.MethodGet, "/employees/", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total":0`)
	assert.Contains(t, recorder.Body.String(), `"limit":100`)
	assert.Contains(t, recorder.Body.String(), `"employees":[]`)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_InvalidParams(t *testing.T) {
	testCases := []struct {
		name   string
		target string
	}{
		{"Limit Zero", "/employees/?limit=0"},
		{"Limit Too Large", "/employees/?limit=1001"},
		{"Limit Not A Number", "/employees/?limit=abc"},
		{"Negative Offset", "/employees/?offset=-1"},
		{"Offset Not A Number", "/employees/?offset=x"},
		{"Bad Date Filter", "/employees/?start_date_after=01-05-2024"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, mock := setupEmployeeRouter(t)

			recorder := performRequest(router, http.MethodGet, tc.target, nil)

			assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
