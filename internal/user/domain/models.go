// Package domain contains dashboard user models and service contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Role is a dashboard role within a tenant.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleViewer  Role = "Viewer"
)

// Status represents lifecycle states for a user account.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInvited  Status = "Invited"
	StatusDisabled Status = "Disabled"
)

// User is a dashboard account belonging to a tenant.
type User struct {
	ID        snowflake.ID `json:"id"`
	TenantID  snowflake.ID `json:"tenantId"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      Role         `json:"role"`
	Status    Status       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Row is a user joined with their tenant's display name.
type Row struct {
	User
	TenantName string `json:"tenantName"`
}
