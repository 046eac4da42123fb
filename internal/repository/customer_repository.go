package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zainxyz/thriller/internal/model"
)

// ErrCustomerNotFound is returned when a customer id does not match any row.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepo provides CRUD operations for customers.
type CustomerRepo struct{ DB *sql.DB }

// NewCustomerRepo returns a new CustomerRepo bound to the given database.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{DB: db} }

// List returns all customers sorted by name.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, phone, is_gold FROM customers ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// GetByID fetches a single customer by id.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (model.Customer, error) {
	var c model.Customer
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, phone, is_gold FROM customers WHERE id=? LIMIT 1", id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.IsGold)
	if err == sql.ErrNoRows {
		return model.Customer{}, ErrCustomerNotFound
	}
	return c, err
}

// Create inserts a customer and populates its generated id.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO customers (name, phone, is_gold) VALUES (?,?,?)",
		c.Name, c.Phone, c.IsGold)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// Update rewrites every field of a customer.
func (r *CustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE customers SET name=?, phone=?, is_gold=? WHERE id=?",
		c.Name, c.Phone, c.IsGold, c.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, c.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a customer by id.
func (r *CustomerRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM customers WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
