package database

import "fmt"

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	position TEXT,
	department TEXT,
	start_date DATE
)
`

// The UNIQUE (employee_id, work_day) constraint serializes concurrent upserts
// for the same pair; the application falls back to an update when it loses.
const createWorkShiftsTable = `
CREATE TABLE IF NOT EXISTS work_shifts (
	id SERIAL PRIMARY KEY,
	employee_id INTEGER NOT NULL REFERENCES employees (id),
	work_day DATE NOT NULL,
	shift TEXT NOT NULL,
	CONSTRAINT work_shifts_employee_day_key UNIQUE (employee_id, work_day)
)
`

// Migrate creates the schema. Every statement is idempotent, so running it
// against an already-initialized database is safe.
func Migrate(db DB) error {
	if _, err := db.Exec(createEmployeesTable); err != nil {
		return fmt.Errorf("failed to create employees table: %w", err)
	}
	if _, err := db.Exec(createWorkShiftsTable); err != nil {
		return fmt.Errorf("failed to create work_shifts table: %w", err)
	}
	return nil
}
