// Package repository implements the in-memory stores backing the API.
// Each store is an ordered slice guarded by a RWMutex; id assignment
// and check-then-write sequences run entirely under the lock.
package repository

import (
	"sync"
	"time"

	"github.com/Banana-Clint/Bricool/internal/model"
)

type CustomerRepository struct {
	mu        sync.RWMutex
	customers []model.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// List returns a snapshot copy of the store in insertion order.
func (r *CustomerRepository) List() []model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

func (r *CustomerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.customers)
}

func (r *CustomerRepository) FindByID(id int) (model.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.ID == id {
			return c, true
		}
	}
	return model.Customer{}, false
}

func (r *CustomerRepository) FindByEmail(email string) (model.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.Email == email {
			return c, true
		}
	}
	return model.Customer{}, false
}

// Insert assigns the next id, stamps both timestamps and appends.
// Email uniqueness is deliberately not checked on customer insert.
func (r *CustomerRepository) Insert(c model.Customer) model.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	c.ID = r.nextIDLocked()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.customers = append(r.customers, c)
	return c
}

func (r *CustomerRepository) Update(id int, patch model.CustomerPatch) (model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return model.Customer{}, ErrNotFound
	}

	if patch.Email != nil && *patch.Email != "" && *patch.Email != r.customers[idx].Email {
		for _, other := range r.customers {
			if other.Email == *patch.Email && other.ID != id {
				return model.Customer{}, ErrEmailExists
			}
		}
	}

	patch.Apply(&r.customers[idx])
	r.customers[idx].UpdatedAt = time.Now().UTC()
	return r.customers[idx], nil
}

// Remove deletes the record and returns the removed value.
func (r *CustomerRepository) Remove(id int) (model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return model.Customer{}, ErrNotFound
	}

	removed := r.customers[idx]
	r.customers = append(r.customers[:idx], r.customers[idx+1:]...)
	return removed, nil
}

// Seed appends records as given, keeping their ids and timestamps.
func (r *CustomerRepository) Seed(customers []model.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append(r.customers, customers...)
}

func (r *CustomerRepository) indexLocked(id int) int {
	for i, c := range r.customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r *CustomerRepository) nextIDLocked() int {
	next := 1
	for _, c := range r.customers {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}
