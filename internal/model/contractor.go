package model

import "time"

type ContractorStatus string

const (
	ContractorStatusPending   ContractorStatus = "pending"
	ContractorStatusActive    ContractorStatus = "active"
	ContractorStatusSuspended ContractorStatus = "suspended"
	ContractorStatusInactive  ContractorStatus = "inactive"
)

type BusinessType string

const (
	BusinessTypeSoleProprietor BusinessType = "sole-proprietor"
	BusinessTypeLLC            BusinessType = "llc"
	BusinessTypeCorporation    BusinessType = "corporation"
	BusinessTypePartnership    BusinessType = "partnership"
)

type Contractor struct {
	ID             int              `json:"id"`
	CompanyName    string           `json:"companyName"`
	ContactName    string           `json:"contactName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	TaxID          string           `json:"taxId,omitempty"`
	BusinessType   BusinessType     `json:"businessType"`
	Industry       string           `json:"industry"`
	ContractorType string           `json:"contractorType"`
	Address        string           `json:"address,omitempty"`
	City           string           `json:"city,omitempty"`
	State          string           `json:"state,omitempty"`
	ServiceAreas   []string         `json:"serviceAreas"`
	Specialities   []string         `json:"specialities"`
	Status         ContractorStatus `json:"status"`

	// IsActive is an independent activity flag. Only Activate and
	// Deactivate keep it in sync with Status; a plain update that
	// changes Status leaves it untouched.
	IsActive bool `json:"isActive"`

	Rating        float64 `json:"rating"`
	TotalJobs     int     `json:"totalJobs"`
	CompletedJobs int     `json:"completedJobs"`

	PaymentTerms string   `json:"paymentTerms"`
	HourlyRate   *float64 `json:"hourlyRate,omitempty"`
	ProjectRate  *float64 `json:"projectRate,omitempty"`
	Currency     string   `json:"currency"`

	InsuranceExpiry *time.Time `json:"insuranceExpiry,omitempty"`
	Certifications  []string   `json:"certifications"`

	PreferredContactMethod string `json:"preferredContactMethod"`
	Availability           string `json:"availability"`

	Website        string   `json:"website,omitempty"`
	Description    string   `json:"description,omitempty"`
	Tags           []string `json:"tags"`
	Notes          string   `json:"notes,omitempty"`
	ReferralSource string   `json:"referralSource,omitempty"`

	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	LastActiveAt      *time.Time `json:"lastActiveAt,omitempty"`
	ContractStartDate *time.Time `json:"contractStartDate,omitempty"`
	ContractEndDate   *time.Time `json:"contractEndDate,omitempty"`
}

// NewContractor returns a contractor with field defaults applied.
// Caller data is overlaid on top via ContractorPatch.Apply, so any
// field present in the payload wins over its default.
func NewContractor() Contractor {
	return Contractor{
		BusinessType:           BusinessTypeSoleProprietor,
		Industry:               "general",
		Status:                 ContractorStatusPending,
		IsActive:               true,
		PaymentTerms:           "net-30",
		Currency:               "USD",
		PreferredContactMethod: "email",
		Availability:           "business-hours",
	}
}

// ContractorPatch carries an optional value for every mutable
// contractor field, applied overlay-style on update. ID and createdAt
// are immutable; updatedAt is stamped by the store.
type ContractorPatch struct {
	CompanyName    *string           `json:"companyName"`
	ContactName    *string           `json:"contactName"`
	Email          *string           `json:"email"`
	Phone          *string           `json:"phone"`
	TaxID          *string           `json:"taxId"`
	BusinessType   *BusinessType     `json:"businessType"`
	Industry       *string           `json:"industry"`
	ContractorType *string           `json:"contractorType"`
	Address        *string           `json:"address"`
	City           *string           `json:"city"`
	State          *string           `json:"state"`
	ServiceAreas   []string          `json:"serviceAreas"`
	Specialities   []string          `json:"specialities"`
	Status         *ContractorStatus `json:"status"`
	IsActive       *bool             `json:"isActive"`
	Rating         *float64          `json:"rating"`
	TotalJobs      *int              `json:"totalJobs"`
	CompletedJobs  *int              `json:"completedJobs"`

	PaymentTerms *string  `json:"paymentTerms"`
	HourlyRate   *float64 `json:"hourlyRate"`
	ProjectRate  *float64 `json:"projectRate"`
	Currency     *string  `json:"currency"`

	InsuranceExpiry *time.Time `json:"insuranceExpiry"`
	Certifications  []string   `json:"certifications"`

	PreferredContactMethod *string `json:"preferredContactMethod"`
	Availability           *string `json:"availability"`

	Website        *string  `json:"website"`
	Description    *string  `json:"description"`
	Tags           []string `json:"tags"`
	Notes          *string  `json:"notes"`
	ReferralSource *string  `json:"referralSource"`

	LastActiveAt      *time.Time `json:"lastActiveAt"`
	ContractStartDate *time.Time `json:"contractStartDate"`
	ContractEndDate   *time.Time `json:"contractEndDate"`
}

func (p ContractorPatch) Apply(c *Contractor) {
	if p.CompanyName != nil {
		c.CompanyName = *p.CompanyName
	}
	if p.ContactName != nil {
		c.ContactName = *p.ContactName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.TaxID != nil {
		c.TaxID = *p.TaxID
	}
	if p.BusinessType != nil {
		c.BusinessType = *p.BusinessType
	}
	if p.Industry != nil {
		c.Industry = *p.Industry
	}
	if p.ContractorType != nil {
		c.ContractorType = *p.ContractorType
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.City != nil {
		c.City = *p.City
	}
	if p.State != nil {
		c.State = *p.State
	}
	if p.ServiceAreas != nil {
		c.ServiceAreas = p.ServiceAreas
	}
	if p.Specialities != nil {
		c.Specialities = p.Specialities
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
	if p.Rating != nil {
		c.Rating = *p.Rating
	}
	if p.TotalJobs != nil {
		c.TotalJobs = *p.TotalJobs
	}
	if p.CompletedJobs != nil {
		c.CompletedJobs = *p.CompletedJobs
	}
	if p.PaymentTerms != nil {
		c.PaymentTerms = *p.PaymentTerms
	}
	if p.HourlyRate != nil {
		c.HourlyRate = p.HourlyRate
	}
	if p.ProjectRate != nil {
		c.ProjectRate = p.ProjectRate
	}
	if p.Currency != nil {
		c.Currency = *p.Currency
	}
	if p.InsuranceExpiry != nil {
		c.InsuranceExpiry = p.InsuranceExpiry
	}
	if p.Certifications != nil {
		c.Certifications = p.Certifications
	}
	if p.PreferredContactMethod != nil {
		c.PreferredContactMethod = *p.PreferredContactMethod
	}
	if p.Availability != nil {
		c.Availability = *p.Availability
	}
	if p.Website != nil {
		c.Website = *p.Website
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Tags != nil {
		c.Tags = p.Tags
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.ReferralSource != nil {
		c.ReferralSource = *p.ReferralSource
	}
	if p.LastActiveAt != nil {
		c.LastActiveAt = p.LastActiveAt
	}
	if p.ContractStartDate != nil {
		c.ContractStartDate = p.ContractStartDate
	}
	if p.ContractEndDate != nil {
		c.ContractEndDate = p.ContractEndDate
	}
}
