package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/pkg/query"
)

type ListTenantRequest struct {
	query.Request
}

type ListTenantResponse struct {
	Tenants []Tenant   `json:"tenants"`
	Meta    query.Meta `json:"meta"`
}

type CreateTenantRequest struct {
	Name     string
	Email    string
	Phone    string
	Language string
}

type UpdateTenantRequest struct {
	ID     snowflake.ID
	Name   string
	Email  string
	Phone  string
	Status Status
}

// DeleteTenantResponse reports the cascade fan-out of a tenant removal.
type DeleteTenantResponse struct {
	DevicesRemoved       int `json:"devicesRemoved"`
	UsersRemoved         int `json:"usersRemoved"`
	SubscriptionsRemoved int `json:"subscriptionsRemoved"`
	BillingRemoved       int `json:"billingRemoved"`
}

type Service interface {
	Create(context.Context, CreateTenantRequest) (Tenant, error)
	GetByID(context.Context, snowflake.ID) (Tenant, error)
	List(context.Context, ListTenantRequest) (ListTenantResponse, error)
	Update(context.Context, UpdateTenantRequest) (Tenant, error)
	Delete(context.Context, snowflake.ID) (DeleteTenantResponse, error)
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidEmail = errors.New("invalid_email")
	ErrNotFound     = errors.New("not_found")
)
