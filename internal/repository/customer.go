package repository

import (
	"fmt"
	"log/slog"

	"github.com/jcalloway/backoffice/internal/models"
)

// CustomerRepository defines durable storage for customer aggregates. Every
// write persists the whole aggregate: the customer plus its accounts and
// services, with concrete variants preserved.
type CustomerRepository interface {
	Add(customer *models.Customer, actor *models.Employee) error
	Update(id string, customer *models.Customer) error
	Remove(id string) error
	FindByID(id string) (*models.Customer, error)
	ListAll() ([]*models.Customer, error)
}

// fileCustomerRepository implements CustomerRepository over a single JSON
// file. There is no cache: every operation re-reads the backing store.
type fileCustomerRepository struct {
	path   string
	logger *slog.Logger
}

// NewFileCustomerRepository creates a CustomerRepository backed by the JSON
// file at path.
func NewFileCustomerRepository(path string, logger *slog.Logger) CustomerRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &fileCustomerRepository{path: path, logger: logger}
}

// Add appends the customer to the store, stamped with the acting employee.
func (r *fileCustomerRepository) Add(customer *models.Customer, actor *models.Employee) error {
	records, err := r.load()
	if err != nil {
		return err
	}

	createdBy := ""
	if actor != nil {
		createdBy = actor.FullName()
	}
	records = append(records, newCustomerRecord(customer, createdBy))

	if err := r.save(records); err != nil {
		return err
	}
	r.logger.Info("customer added", "customer_id", customer.ID(), "created_by", createdBy)
	return nil
}

// Update replaces the record matching id in place, keeping every other
// record's position and the original created_by stamp. A missing id is a
// warned no-op, not an error.
func (r *fileCustomerRepository) Update(id string, customer *models.Customer) error {
	records, err := r.load()
	if err != nil {
		return err
	}

	for i, rec := range records {
		if rec.ID == id {
			records[i] = newCustomerRecord(customer, rec.CreatedBy)
			if err := r.save(records); err != nil {
				return err
			}
			r.logger.Info("customer updated", "customer_id", id)
			return nil
		}
	}

	r.logger.Warn("update of non-existent customer", "customer_id", id)
	return nil
}

// Remove deletes the record matching id. A missing id is a warned no-op.
func (r *fileCustomerRepository) Remove(id string) error {
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
		r.logger.Warn("remove of non-existent customer", "customer_id", id)
		return nil
	}

	if err := r.save(kept); err != nil {
		return err
	}
	r.logger.Info("customer removed", "customer_id", id)
	return nil
}

// FindByID loads the aggregate for id, or models.ErrNotFound.
func (r *fileCustomerRepository) FindByID(id string) (*models.Customer, error) {
	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec.toDomain()
		}
	}
	return nil, fmt.Errorf("customer %s: %w", id, models.ErrNotFound)
}

// ListAll rebuilds every stored aggregate in storage order. One malformed
// record fails the whole load; skipping it would silently drop the record on
// the next whole-collection rewrite.
func (r *fileCustomerRepository) ListAll() ([]*models.Customer, error) {
	records, err := r.load()
	if err != nil {
		return nil, err
	}
	customers := make([]*models.Customer, 0, len(records))
	for _, rec := range records {
		c, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *fileCustomerRepository) load() ([]customerRecord, error) {
	var records []customerRecord
	if _, err := readJSONFile(r.path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *fileCustomerRepository) save(records []customerRecord) error {
	return writeJSONFile(r.path, records)
}
