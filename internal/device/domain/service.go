package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/pkg/query"
)

type ListDeviceRequest struct {
	query.Request
}

type ListDeviceResponse struct {
	Devices []Row      `json:"devices"`
	Meta    query.Meta `json:"meta"`
}

type ListUnregisteredResponse struct {
	Devices []UnregisteredDevice `json:"devices"`
	Meta    query.Meta           `json:"meta"`
}

// RegisterDeviceRequest claims an unregistered device for a tenant.
type RegisterDeviceRequest struct {
	UnregisteredID snowflake.ID
	TenantID       snowflake.ID
	Firmware       string
}

type UpdateDeviceRequest struct {
	ID       snowflake.ID
	Firmware string
	Status   Status
}

type Service interface {
	List(context.Context, ListDeviceRequest) (ListDeviceResponse, error)
	ListUnregistered(context.Context, query.Request) (ListUnregisteredResponse, error)
	Register(context.Context, RegisterDeviceRequest) (Device, error)
	Update(context.Context, UpdateDeviceRequest) (Device, error)
	Delete(context.Context, snowflake.ID) error
}

var (
	ErrNotFound       = errors.New("not_found")
	ErrUnknownTenant  = errors.New("unknown_tenant")
	ErrInvalidRequest = errors.New("invalid_request")
)
