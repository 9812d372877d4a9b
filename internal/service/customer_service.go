// Package service implements the business rules of the directory API:
// filtering, sorting and pagination of listings, uniqueness and
// precondition handling, state transitions and aggregate tallies.
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Banana-Clint/Bricool/internal/model"
	"github.com/Banana-Clint/Bricool/internal/repository"
)

type CustomerService struct {
	repo *repository.CustomerRepository
}

func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// CustomerListOptions are the parsed query parameters of a customer
// listing. Zero values mean "not supplied".
type CustomerListOptions struct {
	Search string
	Status string
	Page   int
	Limit  int
}

type CustomerPage struct {
	Data       []model.Customer
	Pagination model.Pagination
}

// CustomerSearchResult carries unpaginated search hits. Pagination is
// only set when an empty query fell through to the full listing.
type CustomerSearchResult struct {
	Data       []model.Customer
	Total      int
	Pagination *model.Pagination
}

// FindAll lists customers: search filter, then status filter, then
// pagination, in that order.
func (s *CustomerService) FindAll(opts CustomerListOptions) CustomerPage {
	customers := s.repo.List()

	if opts.Search != "" {
		term := strings.ToLower(opts.Search)
		filtered := make([]model.Customer, 0, len(customers))
		for _, c := range customers {
			if strings.Contains(strings.ToLower(c.Name), term) ||
				strings.Contains(strings.ToLower(c.Email), term) ||
				strings.Contains(c.Phone, term) {
				filtered = append(filtered, c)
			}
		}
		customers = filtered
	}

	if opts.Status != "" {
		filtered := make([]model.Customer, 0, len(customers))
		for _, c := range customers {
			if string(c.Status) == opts.Status {
				filtered = append(filtered, c)
			}
		}
		customers = filtered
	}

	data, pagination := paginate(customers, opts.Page, opts.Limit)
	return CustomerPage{Data: data, Pagination: pagination}
}

// FindByID returns the customer and whether it exists; a missing id is
// not an error at this level.
func (s *CustomerService) FindByID(id int) (model.Customer, bool) {
	return s.repo.FindByID(id)
}

func (s *CustomerService) FindByEmail(email string) (model.Customer, bool) {
	return s.repo.FindByEmail(email)
}

// Create inserts a new customer. No required-field or uniqueness
// validation is performed on the customer create path; the store
// assigns the id and timestamps.
func (s *CustomerService) Create(data model.CustomerPatch) model.Customer {
	c := model.NewCustomer()
	data.Apply(&c)
	return s.repo.Insert(c)
}

func (s *CustomerService) Update(id int, patch model.CustomerPatch) (model.Customer, error) {
	updated, err := s.repo.Update(id, patch)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return model.Customer{}, fmt.Errorf("customer %w", ErrNotFound)
	case errors.Is(err, repository.ErrEmailExists):
		return model.Customer{}, fmt.Errorf("email %w", ErrConflict)
	case err != nil:
		return model.Customer{}, err
	}
	return updated, nil
}

// Delete removes the customer and returns the removed value.
func (s *CustomerService) Delete(id int) (model.Customer, error) {
	removed, err := s.repo.Remove(id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Customer{}, fmt.Errorf("customer %w", ErrNotFound)
	}
	if err != nil {
		return model.Customer{}, err
	}
	return removed, nil
}

// Search matches the query case-insensitively as a substring of name,
// email, phone or address. An empty query falls through to the
// unfiltered listing.
func (s *CustomerService) Search(query string) CustomerSearchResult {
	if query == "" {
		page := s.FindAll(CustomerListOptions{})
		return CustomerSearchResult{
			Data:       page.Data,
			Total:      page.Pagination.Total,
			Pagination: &page.Pagination,
		}
	}

	term := strings.ToLower(query)
	var hits []model.Customer
	for _, c := range s.repo.List() {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) ||
			strings.Contains(c.Phone, term) ||
			strings.Contains(strings.ToLower(c.Address), term) {
			hits = append(hits, c)
		}
	}
	if hits == nil {
		hits = []model.Customer{}
	}
	return CustomerSearchResult{Data: hits, Total: len(hits)}
}

// CountByStatus tallies the store into fixed buckets; unknown statuses
// only count toward the total.
func (s *CustomerService) CountByStatus() model.CustomerStatusCounts {
	counts := model.CustomerStatusCounts{}
	for _, c := range s.repo.List() {
		switch c.Status {
		case model.CustomerStatusActive:
			counts.Active++
		case model.CustomerStatusInactive:
			counts.Inactive++
		case model.CustomerStatusPending:
			counts.Pending++
		}
		counts.Total++
	}
	return counts
}
