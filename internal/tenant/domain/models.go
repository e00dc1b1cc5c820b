// Package domain contains the tenant model and service contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status represents lifecycle states for a tenant.
type Status string

const (
	StatusActive    Status = "Active"
	StatusSuspended Status = "Suspended"
)

// Tenant is one customer organization on the dashboard.
type Tenant struct {
	ID        snowflake.ID `json:"id"`
	Name      string       `json:"name"`
	Slug      string       `json:"slug"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone,omitempty"`
	Status    Status       `json:"status"`
	Language  string       `json:"language,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}
