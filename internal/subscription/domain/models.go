// Package domain contains subscription models and service contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status represents lifecycle states for a subscription.
type Status string

const (
	StatusActive   Status = "Active"
	StatusTrialing Status = "Trialing"
	StatusCanceled Status = "Canceled"
)

// Subscription is a tenant's plan assignment. Contract dates are ISO-8601
// strings; the empty string means open-ended.
type Subscription struct {
	ID        snowflake.ID `json:"id"`
	TenantID  snowflake.ID `json:"tenantId"`
	Plan      string       `json:"plan"`
	Status    Status       `json:"status"`
	Seats     int          `json:"seats"`
	StartDate string       `json:"startDate,omitempty"`
	EndDate   string       `json:"endDate,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Row is a subscription joined with its tenant's display name.
type Row struct {
	Subscription
	TenantName string `json:"tenantName"`
}
