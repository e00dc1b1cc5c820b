// Package domain contains device models and service contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status represents lifecycle states for a registered device.
type Status string

const (
	StatusOnline      Status = "Online"
	StatusOffline     Status = "Offline"
	StatusMaintenance Status = "Maintenance"
)

// Device is a registered device owned by a tenant.
type Device struct {
	ID           snowflake.ID `json:"id"`
	TenantID     snowflake.ID `json:"tenantId"`
	SerialNumber string       `json:"serialNumber"`
	Type         string       `json:"type"`
	Firmware     string       `json:"firmware,omitempty"`
	Status       Status       `json:"status"`
	RegisteredAt time.Time    `json:"registeredAt"`
}

// UnregisteredDevice has reported in but is not yet claimed by a tenant.
type UnregisteredDevice struct {
	ID           snowflake.ID `json:"id"`
	SerialNumber string       `json:"serialNumber"`
	Type         string       `json:"type"`
	SeenAt       time.Time    `json:"seenAt"`
}

// Row is a device joined with its tenant's display name for listing.
type Row struct {
	Device
	TenantName string `json:"tenantName"`
}
