package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Banana-Clint/Bricool/internal/model"
	"github.com/Banana-Clint/Bricool/internal/repository"
)

// fakeGenerator records the roster it was asked to render.
type fakeGenerator struct {
	roster model.ContractorRoster
	err    error
}

func (f *fakeGenerator) Generate(roster model.ContractorRoster) ([]byte, error) {
	f.roster = roster
	if f.err != nil {
		return nil, f.err
	}
	return []byte("rendered"), nil
}

func newContractorService() (*ContractorService, *fakeGenerator, *fakeGenerator) {
	excel := &fakeGenerator{}
	pdf := &fakeGenerator{}
	return NewContractorService(repository.NewContractorRepository(), excel, pdf), excel, pdf
}

func createContractor(t *testing.T, s *ContractorService, company, email string, extra model.ContractorPatch) model.Contractor {
	t.Helper()
	extra.CompanyName = strPtr(company)
	extra.Email = strPtr(email)
	if extra.Phone == nil {
		extra.Phone = strPtr("555-0100")
	}
	if extra.ContractorType == nil {
		extra.ContractorType = strPtr("company")
	}
	created, err := s.Create(extra)
	require.NoError(t, err)
	return created
}

func TestContractorCreateRequiredFields(t *testing.T) {
	s, _, _ := newContractorService()

	cases := []struct {
		name  string
		patch model.ContractorPatch
	}{
		{"companyName", model.ContractorPatch{Email: strPtr("a@x.com"), Phone: strPtr("555"), ContractorType: strPtr("individual")}},
		{"email", model.ContractorPatch{CompanyName: strPtr("Acme"), Phone: strPtr("555"), ContractorType: strPtr("individual")}},
		{"phone", model.ContractorPatch{CompanyName: strPtr("Acme"), Email: strPtr("a@x.com"), ContractorType: strPtr("individual")}},
		{"contractorType", model.ContractorPatch{CompanyName: strPtr("Acme"), Email: strPtr("a@x.com"), Phone: strPtr("555")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(tc.patch)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Contains(t, err.Error(), tc.name)
		})
	}
}

func TestContractorCreateDefaults(t *testing.T) {
	s, _, _ := newContractorService()

	created := createContractor(t, s, "Acme", "a@x.com", model.ContractorPatch{})
	assert.Equal(t, 1, created.ID)
	assert.True(t, created.IsActive)
	assert.Zero(t, created.Rating)
	assert.Zero(t, created.TotalJobs)
	assert.Zero(t, created.CompletedJobs)
	assert.Equal(t, model.ContractorStatusPending, created.Status)
	assert.Equal(t, model.BusinessTypeSoleProprietor, created.BusinessType)
	assert.Equal(t, "USD", created.Currency)
	assert.Equal(t, "net-30", created.PaymentTerms)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestContractorCreatePayloadOverridesDefaults(t *testing.T) {
	s, _, _ := newContractorService()

	inactive := false
	status := model.ContractorStatusActive
	created := createContractor(t, s, "Acme", "a@x.com", model.ContractorPatch{
		IsActive: &inactive,
		Status:   &status,
		Currency: strPtr("EUR"),
	})
	assert.False(t, created.IsActive)
	assert.Equal(t, model.ContractorStatusActive, created.Status)
	assert.Equal(t, "EUR", created.Currency)
}

func TestContractorCreateDuplicateEmail(t *testing.T) {
	s, _, _ := newContractorService()
	createContractor(t, s, "Acme", "a@x.com", model.ContractorPatch{})

	_, err := s.Create(model.ContractorPatch{
		CompanyName:    strPtr("Other"),
		Email:          strPtr("a@x.com"),
		Phone:          strPtr("555"),
		ContractorType: strPtr("company"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestContractorUpdateConflicts(t *testing.T) {
	s, _, _ := newContractorService()
	first := createContractor(t, s, "First", "first@x.com", model.ContractorPatch{TaxID: strPtr("TAX-1")})
	second := createContractor(t, s, "Second", "second@x.com", model.ContractorPatch{TaxID: strPtr("TAX-2")})

	_, err := s.Update(second.ID, model.ContractorPatch{Email: strPtr(first.Email)})
	assert.True(t, errors.Is(err, ErrConflict))

	_, err = s.Update(second.ID, model.ContractorPatch{TaxID: strPtr("TAX-1")})
	assert.True(t, errors.Is(err, ErrConflict))

	// re-asserting the record's own values is fine
	updated, err := s.Update(second.ID, model.ContractorPatch{Email: strPtr(second.Email), TaxID: strPtr("TAX-2")})
	require.NoError(t, err)
	assert.Equal(t, "second@x.com", updated.Email)

	_, err = s.Update(999, model.ContractorPatch{Email: strPtr("new@x.com")})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestContractorDirectStatusUpdateLeavesIsActiveStale(t *testing.T) {
	s, _, _ := newContractorService()
	c := createContractor(t, s, "Acme", "a@x.com", model.ContractorPatch{})

	suspended := model.ContractorStatusSuspended
	updated, err := s.Update(c.ID, model.ContractorPatch{Status: &suspended})
	require.NoError(t, err)
	assert.Equal(t, model.ContractorStatusSuspended, updated.Status)
	assert.True(t, updated.IsActive)
}

func TestContractorDeleteRequiresDeactivation(t *testing.T) {
	s, _, _ := newContractorService()
	c := createContractor(t, s, "Acme", "a@x.com", model.ContractorPatch{})

	_, err := s.Delete(c.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContractorActive))

	deactivated, err := s.Deactivate(c.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
	assert.Equal(t, model.ContractorStatusInactive, deactivated.Status)

	removed, err := s.Delete(c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, removed.ID)

	_, found := s.FindByID(c.ID)
	assert.False(t, found)
}

func TestContractorActivateMirrorsStatus(t *testing.T) {
	s, _, _ := newContractorService()
	c := createContractor(t, s, "Acme", "a@x.com", model.ContractorPatch{})

	_, err := s.Deactivate(c.ID)
	require.NoError(t, err)

	activated, err := s.Activate(c.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)
	assert.Equal(t, model.ContractorStatusActive, activated.Status)

	_, err = s.Activate(999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestContractorUpdateRatingBounds(t *testing.T) {
	s, _, _ := newContractorService()
	c := createContractor(t, s, "Acme", "a@x.com", model.ContractorPatch{})

	for _, invalid := range []float64{-0.1, 5.1, 12} {
		_, err := s.UpdateRating(c.ID, invalid)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}

	for _, valid := range []float64{0, 5, 4.5} {
		updated, err := s.UpdateRating(c.ID, valid)
		require.NoError(t, err)
		assert.Equal(t, valid, updated.Rating)
	}

	_, err := s.UpdateRating(999, 3)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestContractorAddJob(t *testing.T) {
	s, _, _ := newContractorService()
	c := createContractor(t, s, "Acme", "a@x.com", model.ContractorPatch{})

	updated, err := s.AddJob(c.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.TotalJobs)
	assert.Equal(t, 1, updated.CompletedJobs)

	updated, err = s.AddJob(c.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.TotalJobs)
	assert.Equal(t, 1, updated.CompletedJobs)

	_, err = s.AddJob(999, true)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestContractorStatsEmptyStore(t *testing.T) {
	s, _, _ := newContractorService()

	stats := s.GetStats()
	assert.Zero(t, stats.TotalContractors)
	assert.Zero(t, stats.AverageRating)
	assert.Zero(t, stats.CompletionRate)
}

func TestContractorStats(t *testing.T) {
	s, _, _ := newContractorService()
	a := createContractor(t, s, "A", "a@x.com", model.ContractorPatch{})
	b := createContractor(t, s, "B", "b@x.com", model.ContractorPatch{})
	createContractor(t, s, "C", "c@x.com", model.ContractorPatch{})

	_, err := s.UpdateRating(a.ID, 4)
	require.NoError(t, err)
	_, err = s.UpdateRating(b.ID, 3)
	require.NoError(t, err)

	_, err = s.AddJob(a.ID, true)
	require.NoError(t, err)
	_, err = s.AddJob(a.ID, false)
	require.NoError(t, err)
	_, err = s.AddJob(b.ID, true)
	require.NoError(t, err)

	_, err = s.Deactivate(b.ID)
	require.NoError(t, err)

	stats := s.GetStats()
	assert.Equal(t, 3, stats.TotalContractors)
	assert.Equal(t, 2, stats.ActiveContractors)
	assert.Equal(t, 1, stats.InactiveContractors)
	assert.InDelta(t, 2.33, stats.AverageRating, 0.001)
	assert.Equal(t, 3, stats.TotalJobs)
	assert.Equal(t, 2, stats.CompletedJobs)
	assert.InDelta(t, 66.67, stats.CompletionRate, 0.001)
}

func TestContractorCountByStatusAndType(t *testing.T) {
	s, _, _ := newContractorService()
	createContractor(t, s, "A", "a@x.com", model.ContractorPatch{ContractorType: strPtr("company")})
	b := createContractor(t, s, "B", "b@x.com", model.ContractorPatch{ContractorType: strPtr("individual")})
	createContractor(t, s, "C", "c@x.com", model.ContractorPatch{ContractorType: strPtr("individual")})

	_, err := s.Deactivate(b.ID)
	require.NoError(t, err)

	byStatus := s.CountByStatus()
	assert.Equal(t, 2, byStatus.Pending)
	assert.Equal(t, 1, byStatus.Inactive)
	assert.Equal(t, 3, byStatus.Total)

	byType := s.CountByType()
	assert.Equal(t, map[string]int{"company": 1, "individual": 2}, byType)
}

func TestContractorFindAllFilters(t *testing.T) {
	s, _, _ := newContractorService()
	a := createContractor(t, s, "Alpha Builders", "alpha@x.com", model.ContractorPatch{
		ContractorType: strPtr("company"),
		Specialities:   []string{"plumbing", "heating"},
	})
	b := createContractor(t, s, "Beta Crafts", "beta@x.com", model.ContractorPatch{
		ContractorType: strPtr("individual"),
		Specialities:   []string{"carpentry"},
	})

	_, err := s.UpdateRating(a.ID, 4.5)
	require.NoError(t, err)
	_, err = s.UpdateRating(b.ID, 3)
	require.NoError(t, err)
	_, err = s.Deactivate(b.ID)
	require.NoError(t, err)

	bySpeciality := s.FindAll(ContractorListOptions{Speciality: "plumbing"})
	require.Len(t, bySpeciality.Data, 1)
	assert.Equal(t, a.ID, bySpeciality.Data[0].ID)

	minRating := 4.5
	byRating := s.FindAll(ContractorListOptions{MinRating: &minRating})
	require.Len(t, byRating.Data, 1)
	assert.Equal(t, a.ID, byRating.Data[0].ID)

	active := false
	byActive := s.FindAll(ContractorListOptions{IsActive: &active})
	require.Len(t, byActive.Data, 1)
	assert.Equal(t, b.ID, byActive.Data[0].ID)

	byType := s.FindAll(ContractorListOptions{ContractorType: "individual"})
	require.Len(t, byType.Data, 1)
	assert.Equal(t, b.ID, byType.Data[0].ID)

	bySearch := s.FindAll(ContractorListOptions{Search: "beta"})
	require.Len(t, bySearch.Data, 1)
	assert.Equal(t, b.ID, bySearch.Data[0].ID)
}

func TestContractorFindAllSort(t *testing.T) {
	s, _, _ := newContractorService()
	a := createContractor(t, s, "Zenith", "z@x.com", model.ContractorPatch{})
	b := createContractor(t, s, "Apex", "ap@x.com", model.ContractorPatch{})
	c := createContractor(t, s, "Midline", "m@x.com", model.ContractorPatch{})

	_, err := s.UpdateRating(a.ID, 2)
	require.NoError(t, err)
	_, err = s.UpdateRating(b.ID, 5)
	require.NoError(t, err)
	_, err = s.UpdateRating(c.ID, 3.5)
	require.NoError(t, err)

	asc := s.FindAll(ContractorListOptions{SortBy: "companyName"})
	require.Len(t, asc.Data, 3)
	assert.Equal(t, []string{"Apex", "Midline", "Zenith"}, companyNames(asc.Data))

	desc := s.FindAll(ContractorListOptions{SortBy: "rating", SortOrder: "desc"})
	assert.Equal(t, []string{"Apex", "Midline", "Zenith"}, companyNames(desc.Data))

	// unknown sort field leaves insertion order untouched
	unknown := s.FindAll(ContractorListOptions{SortBy: "nonsense"})
	assert.Equal(t, []string{"Zenith", "Apex", "Midline"}, companyNames(unknown.Data))
}

func companyNames(contractors []model.Contractor) []string {
	names := make([]string, len(contractors))
	for i, c := range contractors {
		names[i] = c.CompanyName
	}
	return names
}

func TestContractorFindAllFilterSortPaginateOrder(t *testing.T) {
	s, _, _ := newContractorService()
	for i := 1; i <= 12; i++ {
		patch := model.ContractorPatch{ContractorType: strPtr("company")}
		if i%2 == 0 {
			patch.ContractorType = strPtr("individual")
		}
		c := createContractor(t, s, fmt.Sprintf("Company %02d", i), fmt.Sprintf("c%d@x.com", i), patch)
		_, err := s.UpdateRating(c.ID, float64(i%6))
		require.NoError(t, err)
	}

	result := s.FindAll(ContractorListOptions{
		ContractorType: "individual",
		SortBy:         "companyName",
		SortOrder:      "desc",
		Page:           2,
		Limit:          4,
	})
	assert.Equal(t, 6, result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	require.Len(t, result.Data, 2)
	assert.Equal(t, []string{"Company 04", "Company 02"}, companyNames(result.Data))
}

func TestContractorSearch(t *testing.T) {
	s, _, _ := newContractorService()
	createContractor(t, s, "Riverside Roofing", "roof@x.com", model.ContractorPatch{
		City:         strPtr("Austin"),
		Specialities: []string{"roofing", "gutters"},
	})
	createContractor(t, s, "Hilltop Gardens", "garden@x.com", model.ContractorPatch{
		City:         strPtr("Dallas"),
		Specialities: []string{"landscaping"},
	})

	byCity := s.Search("austin", ContractorListOptions{})
	require.Equal(t, 1, byCity.Total)
	assert.Equal(t, "Riverside Roofing", byCity.Data[0].CompanyName)
	assert.Nil(t, byCity.Pagination)

	bySpeciality := s.Search("landscap", ContractorListOptions{})
	require.Equal(t, 1, bySpeciality.Total)
	assert.Equal(t, "Hilltop Gardens", bySpeciality.Data[0].CompanyName)
}

func TestContractorSearchPaginationOnlyWhenRequested(t *testing.T) {
	s, _, _ := newContractorService()
	for i := 1; i <= 15; i++ {
		createContractor(t, s, fmt.Sprintf("Common Name %d", i), fmt.Sprintf("c%d@x.com", i), model.ContractorPatch{})
	}

	plain := s.Search("common", ContractorListOptions{})
	assert.Equal(t, 15, plain.Total)
	assert.Len(t, plain.Data, 15)
	assert.Nil(t, plain.Pagination)

	paged := s.Search("common", ContractorListOptions{Page: 2})
	assert.Equal(t, 15, paged.Total)
	assert.Len(t, paged.Data, 5)
	require.NotNil(t, paged.Pagination)
	assert.Equal(t, 2, paged.Pagination.Page)
}

func TestContractorSearchEmptyQueryDelegatesToFindAll(t *testing.T) {
	s, _, _ := newContractorService()
	createContractor(t, s, "Acme", "a@x.com", model.ContractorPatch{})

	result := s.Search("", ContractorListOptions{})
	assert.Equal(t, 1, result.Total)
	require.NotNil(t, result.Pagination)
}

func TestContractorSearchAppliesStatusAndTypeFilters(t *testing.T) {
	s, _, _ := newContractorService()
	a := createContractor(t, s, "Shared Name One", "one@x.com", model.ContractorPatch{ContractorType: strPtr("company")})
	createContractor(t, s, "Shared Name Two", "two@x.com", model.ContractorPatch{ContractorType: strPtr("individual")})

	byType := s.Search("shared", ContractorListOptions{ContractorType: "company"})
	require.Equal(t, 1, byType.Total)
	assert.Equal(t, a.ID, byType.Data[0].ID)

	_, err := s.Deactivate(a.ID)
	require.NoError(t, err)

	byStatus := s.Search("shared", ContractorListOptions{Status: "inactive"})
	require.Equal(t, 1, byStatus.Total)
	assert.Equal(t, a.ID, byStatus.Data[0].ID)
}

func TestContractorExportRoster(t *testing.T) {
	s, excelGen, pdfGen := newContractorService()
	createContractor(t, s, "Acme", "a@x.com", model.ContractorPatch{Specialities: []string{"plumbing"}})
	createContractor(t, s, "Globex", "g@x.com", model.ContractorPatch{})

	result, err := s.ExportRoster(ContractorListOptions{Speciality: "plumbing"})
	require.NoError(t, err)
	assert.Equal(t, []byte("rendered"), result.Content)
	assert.Regexp(t, `^contractors-\d{8}\.xlsx$`, result.FileName)
	require.Len(t, excelGen.roster.Contractors, 1)
	assert.Equal(t, "Acme", excelGen.roster.Contractors[0].CompanyName)
	assert.Equal(t, 2, excelGen.roster.Stats.TotalContractors)

	pdfResult, err := s.ExportRosterPDF(ContractorListOptions{})
	require.NoError(t, err)
	assert.Regexp(t, `^contractors-\d{8}\.pdf$`, pdfResult.FileName)
	assert.Len(t, pdfGen.roster.Contractors, 2)
}

func TestContractorExportGeneratorFailure(t *testing.T) {
	s, excelGen, _ := newContractorService()
	excelGen.err = errors.New("render failed")

	_, err := s.ExportRoster(ContractorListOptions{})
	require.Error(t, err)
}
