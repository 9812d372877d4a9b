// Package seed holds the sample records the API can boot with.
package seed

import (
	"time"

	"github.com/Banana-Clint/Bricool/internal/model"
)

func Customers() []model.Customer {
	return []model.Customer{
		{
			ID:        1,
			Name:      "John Doe",
			Email:     "john.doe@example.com",
			Phone:     "123-456-7890",
			Address:   "123 Main St, New York, NY",
			Status:    model.CustomerStatusActive,
			CreatedAt: stamp(2024, 1, 1, 10, 30),
			UpdatedAt: stamp(2024, 1, 1, 10, 30),
		},
		{
			ID:        2,
			Name:      "Jane Smith",
			Email:     "jane.smith@example.com",
			Phone:     "987-654-3210",
			Address:   "456 Oak Ave, Los Angeles, CA",
			Status:    model.CustomerStatusActive,
			CreatedAt: stamp(2024, 1, 2, 14, 15),
			UpdatedAt: stamp(2024, 1, 2, 14, 15),
		},
		{
			ID:        3,
			Name:      "Robert Johnson",
			Email:     "robert.j@example.com",
			Phone:     "555-123-4567",
			Address:   "789 Pine Rd, Chicago, IL",
			Status:    model.CustomerStatusInactive,
			CreatedAt: stamp(2024, 1, 3, 9, 45),
			UpdatedAt: stamp(2024, 1, 10, 16, 20),
		},
		{
			ID:        4,
			Name:      "Emily Williams",
			Email:     "emily.w@example.com",
			Phone:     "444-555-6666",
			Address:   "321 Elm St, Houston, TX",
			Status:    model.CustomerStatusActive,
			CreatedAt: stamp(2024, 1, 4, 11, 20),
			UpdatedAt: stamp(2024, 1, 4, 11, 20),
		},
		{
			ID:        5,
			Name:      "Michael Brown",
			Email:     "michael.b@example.com",
			Phone:     "777-888-9999",
			Address:   "654 Maple Ave, Phoenix, AZ",
			Status:    model.CustomerStatusPending,
			CreatedAt: stamp(2024, 1, 5, 13, 10),
			UpdatedAt: stamp(2024, 1, 5, 13, 10),
		},
		{
			ID:        6,
			Name:      "Sarah Davis",
			Email:     "sarah.d@example.com",
			Phone:     "222-333-4444",
			Address:   "987 Cedar Ln, Philadelphia, PA",
			Status:    model.CustomerStatusActive,
			CreatedAt: stamp(2024, 1, 6, 8, 45),
			UpdatedAt: stamp(2024, 1, 6, 8, 45),
		},
	}
}

func Contractors() []model.Contractor {
	return []model.Contractor{
		{
			ID:                     1,
			CompanyName:            "Summit Plumbing Co",
			ContactName:            "Ava Thompson",
			Email:                  "contact@summitplumbing.example.com",
			Phone:                  "212-555-0142",
			TaxID:                  "82-1044321",
			BusinessType:           model.BusinessTypeLLC,
			Industry:               "construction",
			ContractorType:         "company",
			Address:                "12 Harbor Way",
			City:                   "New York",
			State:                  "NY",
			ServiceAreas:           []string{"Manhattan", "Brooklyn"},
			Specialities:           []string{"plumbing", "emergency"},
			Status:                 model.ContractorStatusActive,
			IsActive:               true,
			Rating:                 4.6,
			TotalJobs:              48,
			CompletedJobs:          45,
			PaymentTerms:           "net-30",
			Currency:               "USD",
			Certifications:         []string{"licensed-plumber"},
			PreferredContactMethod: "email",
			Availability:           "24/7",
			Tags:                   []string{"plumbing", "licensed"},
			CreatedAt:              stamp(2024, 2, 1, 9, 0),
			UpdatedAt:              stamp(2024, 3, 15, 12, 30),
		},
		{
			ID:                     2,
			CompanyName:            "Brightline Electric",
			ContactName:            "Marcus Lee",
			Email:                  "office@brightline.example.com",
			Phone:                  "310-555-0197",
			TaxID:                  "47-2231198",
			BusinessType:           model.BusinessTypeCorporation,
			Industry:               "construction",
			ContractorType:         "company",
			Address:                "88 Sunset Blvd",
			City:                   "Los Angeles",
			State:                  "CA",
			ServiceAreas:           []string{"Los Angeles", "Long Beach"},
			Specialities:           []string{"electrical", "solar"},
			Status:                 model.ContractorStatusActive,
			IsActive:               true,
			Rating:                 4.2,
			TotalJobs:              31,
			CompletedJobs:          27,
			PaymentTerms:           "net-15",
			Currency:               "USD",
			PreferredContactMethod: "phone",
			Availability:           "business-hours",
			Tags:                   []string{"electrical"},
			CreatedAt:              stamp(2024, 2, 10, 10, 15),
			UpdatedAt:              stamp(2024, 4, 2, 15, 45),
		},
		{
			ID:                     3,
			CompanyName:            "Hansen Handyman Services",
			ContactName:            "Erik Hansen",
			Email:                  "erik@hansenhandyman.example.com",
			Phone:                  "773-555-0163",
			BusinessType:           model.BusinessTypeSoleProprietor,
			Industry:               "maintenance",
			ContractorType:         "individual",
			City:                   "Chicago",
			State:                  "IL",
			ServiceAreas:           []string{"Chicago"},
			Specialities:           []string{"carpentry", "painting"},
			Status:                 model.ContractorStatusPending,
			IsActive:               true,
			Rating:                 0,
			PaymentTerms:           "net-30",
			Currency:               "USD",
			PreferredContactMethod: "sms",
			Availability:           "weekends",
			CreatedAt:              stamp(2024, 3, 5, 14, 0),
			UpdatedAt:              stamp(2024, 3, 5, 14, 0),
		},
		{
			ID:                     4,
			CompanyName:            "Lone Star HVAC",
			ContactName:            "Priya Natarajan",
			Email:                  "support@lonestarhvac.example.com",
			Phone:                  "832-555-0121",
			TaxID:                  "74-5567210",
			BusinessType:           model.BusinessTypePartnership,
			Industry:               "maintenance",
			ContractorType:         "company",
			City:                   "Houston",
			State:                  "TX",
			ServiceAreas:           []string{"Houston", "Katy"},
			Specialities:           []string{"hvac"},
			Status:                 model.ContractorStatusInactive,
			IsActive:               false,
			Rating:                 3.8,
			TotalJobs:              19,
			CompletedJobs:          14,
			PaymentTerms:           "net-60",
			Currency:               "USD",
			PreferredContactMethod: "email",
			Availability:           "business-hours",
			CreatedAt:              stamp(2024, 1, 20, 8, 30),
			UpdatedAt:              stamp(2024, 4, 18, 11, 0),
		},
	}
}

func stamp(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
