package repository

import (
	"sync"
	"time"

	"github.com/Banana-Clint/Bricool/internal/model"
)

type ContractorRepository struct {
	mu          sync.RWMutex
	contractors []model.Contractor
}

func NewContractorRepository() *ContractorRepository {
	return &ContractorRepository{}
}

// List returns a snapshot copy of the store in insertion order.
func (r *ContractorRepository) List() []model.Contractor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Contractor, len(r.contractors))
	copy(out, r.contractors)
	return out
}

func (r *ContractorRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contractors)
}

func (r *ContractorRepository) FindByID(id int) (model.Contractor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contractors {
		if c.ID == id {
			return c, true
		}
	}
	return model.Contractor{}, false
}

func (r *ContractorRepository) FindByEmail(email string) (model.Contractor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contractors {
		if c.Email == email {
			return c, true
		}
	}
	return model.Contractor{}, false
}

func (r *ContractorRepository) FindByTaxID(taxID string) (model.Contractor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contractors {
		if c.TaxID == taxID {
			return c, true
		}
	}
	return model.Contractor{}, false
}

// Insert assigns the next id, stamps both timestamps and appends.
// The email uniqueness check runs under the same lock as the append.
func (r *ContractorRepository) Insert(c model.Contractor) (model.Contractor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.contractors {
		if other.Email == c.Email {
			return model.Contractor{}, ErrEmailExists
		}
	}

	now := time.Now().UTC()
	c.ID = r.nextIDLocked()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.contractors = append(r.contractors, c)
	return c, nil
}

func (r *ContractorRepository) Update(id int, patch model.ContractorPatch) (model.Contractor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return model.Contractor{}, ErrNotFound
	}

	if patch.Email != nil && *patch.Email != "" && *patch.Email != r.contractors[idx].Email {
		for _, other := range r.contractors {
			if other.Email == *patch.Email && other.ID != id {
				return model.Contractor{}, ErrEmailExists
			}
		}
	}
	if patch.TaxID != nil && *patch.TaxID != "" && *patch.TaxID != r.contractors[idx].TaxID {
		for _, other := range r.contractors {
			if other.TaxID == *patch.TaxID && other.ID != id {
				return model.Contractor{}, ErrTaxIDExists
			}
		}
	}

	patch.Apply(&r.contractors[idx])
	r.contractors[idx].UpdatedAt = time.Now().UTC()
	return r.contractors[idx], nil
}

// Remove deletes the record and returns the removed value. Active
// records are refused; callers deactivate first.
func (r *ContractorRepository) Remove(id int) (model.Contractor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return model.Contractor{}, ErrNotFound
	}
	if r.contractors[idx].IsActive {
		return model.Contractor{}, ErrActive
	}

	removed := r.contractors[idx]
	r.contractors = append(r.contractors[:idx], r.contractors[idx+1:]...)
	return removed, nil
}

// SetActive flips the activity flag and mirrors it into the status
// field, the only place the two signals are synchronized.
func (r *ContractorRepository) SetActive(id int, active bool) (model.Contractor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return model.Contractor{}, ErrNotFound
	}

	r.contractors[idx].IsActive = active
	if active {
		r.contractors[idx].Status = model.ContractorStatusActive
	} else {
		r.contractors[idx].Status = model.ContractorStatusInactive
	}
	r.contractors[idx].UpdatedAt = time.Now().UTC()
	return r.contractors[idx], nil
}

func (r *ContractorRepository) SetRating(id int, rating float64) (model.Contractor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return model.Contractor{}, ErrNotFound
	}

	r.contractors[idx].Rating = rating
	r.contractors[idx].UpdatedAt = time.Now().UTC()
	return r.contractors[idx], nil
}

// AddJob increments totalJobs, and completedJobs when the job is
// reported completed.
func (r *ContractorRepository) AddJob(id int, completed bool) (model.Contractor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return model.Contractor{}, ErrNotFound
	}

	r.contractors[idx].TotalJobs++
	if completed {
		r.contractors[idx].CompletedJobs++
	}
	r.contractors[idx].UpdatedAt = time.Now().UTC()
	return r.contractors[idx], nil
}

// Seed appends records as given, keeping their ids and timestamps.
func (r *ContractorRepository) Seed(contractors []model.Contractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contractors = append(r.contractors, contractors...)
}

func (r *ContractorRepository) indexLocked(id int) int {
	for i, c := range r.contractors {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r *ContractorRepository) nextIDLocked() int {
	next := 1
	for _, c := range r.contractors {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}
