package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Banana-Clint/Bricool/internal/model"
	"github.com/Banana-Clint/Bricool/internal/repository"
)

// RosterGenerator renders a contractor roster into a document.
type RosterGenerator interface {
	Generate(roster model.ContractorRoster) ([]byte, error)
}

type ContractorService struct {
	repo  *repository.ContractorRepository
	excel RosterGenerator
	pdf   RosterGenerator
}

func NewContractorService(repo *repository.ContractorRepository, excel, pdf RosterGenerator) *ContractorService {
	return &ContractorService{repo: repo, excel: excel, pdf: pdf}
}

// ContractorListOptions are the parsed query parameters of a
// contractor listing. Pointer fields distinguish "absent" from a zero
// value.
type ContractorListOptions struct {
	Search         string
	Status         string
	ContractorType string
	Speciality     string
	MinRating      *float64
	IsActive       *bool
	SortBy         string
	SortOrder      string
	Page           int
	Limit          int
}

type ContractorPage struct {
	Data       []model.Contractor
	Pagination model.Pagination
}

// ContractorSearchResult carries search hits. Pagination is set only
// when the caller supplied page or limit, or when an empty query fell
// through to the full listing.
type ContractorSearchResult struct {
	Data       []model.Contractor
	Total      int
	Pagination *model.Pagination
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// FindAll lists contractors: filters, then sort, then pagination, in
// that order.
func (s *ContractorService) FindAll(opts ContractorListOptions) ContractorPage {
	contractors := s.filter(opts)
	s.sortContractors(contractors, opts.SortBy, opts.SortOrder)
	data, pagination := paginate(contractors, opts.Page, opts.Limit)
	return ContractorPage{Data: data, Pagination: pagination}
}

func (s *ContractorService) filter(opts ContractorListOptions) []model.Contractor {
	contractors := s.repo.List()

	if opts.Search != "" {
		term := strings.ToLower(opts.Search)
		filtered := make([]model.Contractor, 0, len(contractors))
		for _, c := range contractors {
			if strings.Contains(strings.ToLower(c.CompanyName), term) ||
				strings.Contains(strings.ToLower(c.ContactName), term) ||
				strings.Contains(strings.ToLower(c.Email), term) ||
				strings.Contains(c.Phone, term) ||
				strings.Contains(c.TaxID, term) {
				filtered = append(filtered, c)
			}
		}
		contractors = filtered
	}

	if opts.Status != "" {
		contractors = keepContractors(contractors, func(c model.Contractor) bool {
			return string(c.Status) == opts.Status
		})
	}

	if opts.ContractorType != "" {
		contractors = keepContractors(contractors, func(c model.Contractor) bool {
			return c.ContractorType == opts.ContractorType
		})
	}

	if opts.Speciality != "" {
		contractors = keepContractors(contractors, func(c model.Contractor) bool {
			for _, sp := range c.Specialities {
				if sp == opts.Speciality {
					return true
				}
			}
			return false
		})
	}

	if opts.MinRating != nil {
		contractors = keepContractors(contractors, func(c model.Contractor) bool {
			return c.Rating >= *opts.MinRating
		})
	}

	if opts.IsActive != nil {
		contractors = keepContractors(contractors, func(c model.Contractor) bool {
			return c.IsActive == *opts.IsActive
		})
	}

	return contractors
}

func keepContractors(contractors []model.Contractor, keep func(model.Contractor) bool) []model.Contractor {
	filtered := make([]model.Contractor, 0, len(contractors))
	for _, c := range contractors {
		if keep(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (s *ContractorService) sortContractors(contractors []model.Contractor, sortBy, sortOrder string) {
	if sortBy == "" {
		return
	}
	desc := sortOrder == "desc"
	sort.SliceStable(contractors, func(i, j int) bool {
		cmp := compareContractors(contractors[i], contractors[j], sortBy)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// compareContractors three-way compares two records on the named
// field. Unknown fields compare equal, which leaves the order as-is.
func compareContractors(a, b model.Contractor, field string) int {
	switch field {
	case "companyName":
		return strings.Compare(a.CompanyName, b.CompanyName)
	case "contactName":
		return strings.Compare(a.ContactName, b.ContactName)
	case "email":
		return strings.Compare(a.Email, b.Email)
	case "phone":
		return strings.Compare(a.Phone, b.Phone)
	case "contractorType":
		return strings.Compare(a.ContractorType, b.ContractorType)
	case "status":
		return strings.Compare(string(a.Status), string(b.Status))
	case "industry":
		return strings.Compare(a.Industry, b.Industry)
	case "city":
		return strings.Compare(a.City, b.City)
	case "state":
		return strings.Compare(a.State, b.State)
	case "id":
		return compareInts(a.ID, b.ID)
	case "rating":
		return compareFloats(a.Rating, b.Rating)
	case "totalJobs":
		return compareInts(a.TotalJobs, b.TotalJobs)
	case "completedJobs":
		return compareInts(a.CompletedJobs, b.CompletedJobs)
	case "hourlyRate":
		return compareFloats(derefRate(a.HourlyRate), derefRate(b.HourlyRate))
	case "projectRate":
		return compareFloats(derefRate(a.ProjectRate), derefRate(b.ProjectRate))
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updatedAt":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return 0
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func derefRate(rate *float64) float64 {
	if rate == nil {
		return 0
	}
	return *rate
}

func (s *ContractorService) FindByID(id int) (model.Contractor, bool) {
	return s.repo.FindByID(id)
}

func (s *ContractorService) FindByEmail(email string) (model.Contractor, bool) {
	return s.repo.FindByEmail(email)
}

func (s *ContractorService) FindByTaxID(taxID string) (model.Contractor, bool) {
	return s.repo.FindByTaxID(taxID)
}

// Create validates the required fields, applies defaults and inserts.
// A duplicate email is a conflict, not a validation failure.
func (s *ContractorService) Create(data model.ContractorPatch) (model.Contractor, error) {
	required := []struct {
		name  string
		value *string
	}{
		{"companyName", data.CompanyName},
		{"email", data.Email},
		{"phone", data.Phone},
		{"contractorType", data.ContractorType},
	}
	for _, field := range required {
		if field.value == nil || *field.value == "" {
			return model.Contractor{}, fmt.Errorf("%w: %s is required", ErrInvalidInput, field.name)
		}
	}

	c := model.NewContractor()
	data.Apply(&c)

	created, err := s.repo.Insert(c)
	if errors.Is(err, repository.ErrEmailExists) {
		return model.Contractor{}, fmt.Errorf("email %w", ErrConflict)
	}
	if err != nil {
		return model.Contractor{}, err
	}
	return created, nil
}

func (s *ContractorService) Update(id int, patch model.ContractorPatch) (model.Contractor, error) {
	updated, err := s.repo.Update(id, patch)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return model.Contractor{}, fmt.Errorf("contractor %w", ErrNotFound)
	case errors.Is(err, repository.ErrEmailExists):
		return model.Contractor{}, fmt.Errorf("email %w", ErrConflict)
	case errors.Is(err, repository.ErrTaxIDExists):
		return model.Contractor{}, fmt.Errorf("tax id %w", ErrConflict)
	case err != nil:
		return model.Contractor{}, err
	}
	return updated, nil
}

// Delete removes the contractor. Active records are refused until
// deactivated.
func (s *ContractorService) Delete(id int) (model.Contractor, error) {
	removed, err := s.repo.Remove(id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return model.Contractor{}, fmt.Errorf("contractor %w", ErrNotFound)
	case errors.Is(err, repository.ErrActive):
		return model.Contractor{}, ErrContractorActive
	case err != nil:
		return model.Contractor{}, err
	}
	return removed, nil
}

func (s *ContractorService) Deactivate(id int) (model.Contractor, error) {
	return s.setActive(id, false)
}

func (s *ContractorService) Activate(id int) (model.Contractor, error) {
	return s.setActive(id, true)
}

func (s *ContractorService) setActive(id int, active bool) (model.Contractor, error) {
	updated, err := s.repo.SetActive(id, active)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Contractor{}, fmt.Errorf("contractor %w", ErrNotFound)
	}
	if err != nil {
		return model.Contractor{}, err
	}
	return updated, nil
}

// UpdateRating sets the rating; values outside [0, 5] are rejected,
// the bounds themselves are accepted.
func (s *ContractorService) UpdateRating(id int, rating float64) (model.Contractor, error) {
	if _, ok := s.repo.FindByID(id); !ok {
		return model.Contractor{}, fmt.Errorf("contractor %w", ErrNotFound)
	}
	if rating < 0 || rating > 5 {
		return model.Contractor{}, fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}

	updated, err := s.repo.SetRating(id, rating)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Contractor{}, fmt.Errorf("contractor %w", ErrNotFound)
	}
	if err != nil {
		return model.Contractor{}, err
	}
	return updated, nil
}

// AddJob increments totalJobs, and completedJobs when completed is
// true.
func (s *ContractorService) AddJob(id int, completed bool) (model.Contractor, error) {
	updated, err := s.repo.AddJob(id, completed)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Contractor{}, fmt.Errorf("contractor %w", ErrNotFound)
	}
	if err != nil {
		return model.Contractor{}, err
	}
	return updated, nil
}

// GetStats aggregates the whole store. An empty store yields zero
// rates rather than a division failure.
func (s *ContractorService) GetStats() model.ContractorStats {
	contractors := s.repo.List()

	stats := model.ContractorStats{TotalContractors: len(contractors)}
	ratingSum := 0.0
	for _, c := range contractors {
		if c.IsActive {
			stats.ActiveContractors++
		}
		ratingSum += c.Rating
		stats.TotalJobs += c.TotalJobs
		stats.CompletedJobs += c.CompletedJobs
	}
	stats.InactiveContractors = stats.TotalContractors - stats.ActiveContractors
	if stats.TotalContractors > 0 {
		stats.AverageRating = round2(ratingSum / float64(stats.TotalContractors))
	}
	if stats.TotalJobs > 0 {
		stats.CompletionRate = round2(float64(stats.CompletedJobs) / float64(stats.TotalJobs) * 100)
	}
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *ContractorService) CountByStatus() model.ContractorStatusCounts {
	counts := model.ContractorStatusCounts{}
	for _, c := range s.repo.List() {
		switch c.Status {
		case model.ContractorStatusActive:
			counts.Active++
		case model.ContractorStatusInactive:
			counts.Inactive++
		case model.ContractorStatusPending:
			counts.Pending++
		case model.ContractorStatusSuspended:
			counts.Suspended++
		}
		counts.Total++
	}
	return counts
}

// CountByType tallies contractors per contractorType; records without
// a type land in the "unknown" bucket.
func (s *ContractorService) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, c := range s.repo.List() {
		t := c.ContractorType
		if t == "" {
			t = "unknown"
		}
		counts[t]++
	}
	return counts
}

// Search matches the query case-insensitively across the text fields
// and the specialities list, then applies optional status and type
// filters. Pagination is applied only when the caller asked for it;
// an empty query falls through to the full listing.
func (s *ContractorService) Search(query string, opts ContractorListOptions) ContractorSearchResult {
	if query == "" {
		page := s.FindAll(opts)
		return ContractorSearchResult{
			Data:       page.Data,
			Total:      page.Pagination.Total,
			Pagination: &page.Pagination,
		}
	}

	term := strings.ToLower(query)
	hits := make([]model.Contractor, 0)
	for _, c := range s.repo.List() {
		if matchesContractor(c, term) {
			hits = append(hits, c)
		}
	}

	if opts.Status != "" {
		hits = keepContractors(hits, func(c model.Contractor) bool {
			return string(c.Status) == opts.Status
		})
	}
	if opts.ContractorType != "" {
		hits = keepContractors(hits, func(c model.Contractor) bool {
			return c.ContractorType == opts.ContractorType
		})
	}

	if opts.Page > 0 || opts.Limit > 0 {
		data, pagination := paginate(hits, opts.Page, opts.Limit)
		return ContractorSearchResult{
			Data:       data,
			Total:      len(hits),
			Pagination: &pagination,
		}
	}

	return ContractorSearchResult{Data: hits, Total: len(hits)}
}

func matchesContractor(c model.Contractor, term string) bool {
	if strings.Contains(strings.ToLower(c.CompanyName), term) ||
		strings.Contains(strings.ToLower(c.ContactName), term) ||
		strings.Contains(strings.ToLower(c.Email), term) ||
		strings.Contains(c.Phone, term) ||
		strings.Contains(c.TaxID, term) ||
		strings.Contains(strings.ToLower(c.Address), term) ||
		strings.Contains(strings.ToLower(c.City), term) ||
		strings.Contains(strings.ToLower(c.State), term) {
		return true
	}
	for _, sp := range c.Specialities {
		if strings.Contains(strings.ToLower(sp), term) {
			return true
		}
	}
	return false
}

// ExportRoster renders the filtered, sorted roster as a workbook.
func (s *ContractorService) ExportRoster(opts ContractorListOptions) (*ExportResult, error) {
	return s.export(opts, s.excel, "xlsx")
}

// ExportRosterPDF renders the filtered, sorted roster as a PDF.
func (s *ContractorService) ExportRosterPDF(opts ContractorListOptions) (*ExportResult, error) {
	return s.export(opts, s.pdf, "pdf")
}

func (s *ContractorService) export(opts ContractorListOptions, generator RosterGenerator, extension string) (*ExportResult, error) {
	contractors := s.filter(opts)
	s.sortContractors(contractors, opts.SortBy, opts.SortOrder)

	roster := model.ContractorRoster{
		GeneratedAt: time.Now().UTC(),
		Stats:       s.GetStats(),
		Contractors: contractors,
	}

	content, err := generator.Generate(roster)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("contractors-%s.%s", roster.GeneratedAt.Format("20060102"), extension)
	return &ExportResult{FileName: fileName, Content: content}, nil
}
