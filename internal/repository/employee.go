package repository

import (
	"fmt"
	"log/slog"

	"github.com/jcalloway/backoffice/internal/models"
)

// EmployeeRepository defines durable storage for employees. Employee records
// are flat; nothing is embedded in them.
type EmployeeRepository interface {
	Add(employee *models.Employee) error
	Remove(id string) error
	FindByID(id string) (*models.Employee, error)
	ListAll() ([]*models.Employee, error)
}

type fileEmployeeRepository struct {
	path   string
	logger *slog.Logger
}

// NewFileEmployeeRepository creates an EmployeeRepository backed by the JSON
// file at path.
func NewFileEmployeeRepository(path string, logger *slog.Logger) EmployeeRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &fileEmployeeRepository{path: path, logger: logger}
}

// Add appends the employee unless an employee with the same id already
// exists, in which case it is a warned no-op.
func (r *fileEmployeeRepository) Add(employee *models.Employee) error {
	records, err := r.load()
	if err != nil {
		return err
	}

	for _, rec := range records {
		if rec.ID == employee.ID {
			r.logger.Warn("employee already exists", "employee_id", employee.ID)
			return nil
		}
	}

	records = append(records, newEmployeeRecord(employee))
	if err := r.save(records); err != nil {
		return err
	}
	r.logger.Info("employee added", "employee_id", employee.ID, "position", string(employee.Position))
	return nil
}

// Remove deletes the record matching id. A missing id is a warned no-op.
func (r *fileEmployeeRepository) Remove(id string) error {
	records, err := r.load()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		r.logger.Warn("remove of non-existent employee", "employee_id", id)
		return nil
	}

	if err := r.save(kept); err != nil {
		return err
	}
	r.logger.Info("employee removed", "employee_id", id)
	return nil
}

// FindByID loads the employee for id, or models.ErrNotFound.
func (r *fileEmployeeRepository) FindByID(id string) (*models.Employee, error) {
	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec.toDomain()
		}
	}
	return nil, fmt.Errorf("employee %s: %w", id, models.ErrNotFound)
}

// ListAll returns every employee in storage order.
func (r *fileEmployeeRepository) ListAll() ([]*models.Employee, error) {
	records, err := r.load()
	if err != nil {
		return nil, err
	}
	employees := make([]*models.Employee, 0, len(records))
	for _, rec := range records {
		e, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func (r *fileEmployeeRepository) load() ([]employeeRecord, error) {
	var records []employeeRecord
	if _, err := readJSONFile(r.path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *fileEmployeeRepository) save(records []employeeRecord) error {
	return writeJSONFile(r.path, records)
}
