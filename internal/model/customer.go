package model

import "time"

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusPending  CustomerStatus = "pending"
)

type Customer struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Address   string         `json:"address"`
	Status    CustomerStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// NewCustomer returns a customer with field defaults applied.
// ID and timestamps are assigned by the store on insert.
func NewCustomer() Customer {
	return Customer{Status: CustomerStatusActive}
}

// CustomerPatch carries an optional value for every mutable customer
// field. Only fields present in the request are applied; ID and
// createdAt are immutable and have no patch slot.
type CustomerPatch struct {
	Name    *string         `json:"name"`
	Email   *string         `json:"email"`
	Phone   *string         `json:"phone"`
	Address *string         `json:"address"`
	Status  *CustomerStatus `json:"status"`
}

func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}
