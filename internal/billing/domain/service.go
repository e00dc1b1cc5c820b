package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/billing/schedule"
	"github.com/northfieldlabs/tenantdesk/pkg/query"
)

type ListBillingRequest struct {
	query.Request
}

type ListBillingResponse struct {
	Records []Row      `json:"records"`
	Meta    query.Meta `json:"meta"`
}

type CreateBillingRequest struct {
	TenantID       snowflake.ID
	PaymentType    schedule.PaymentType
	StartDate      string
	EndDate        string
	DueDay         string
	DueMonth       int
	DeviceContract []ContractLine
	Description    string
}

type UpdateBillingRequest struct {
	ID             snowflake.ID
	PaymentType    schedule.PaymentType
	StartDate      *string
	EndDate        *string
	DueDay         *string
	DueMonth       *int
	DeviceContract []ContractLine
	Description    *string
}

// Detail is a single record with its computed billing fields.
type Detail struct {
	Row
}

type Service interface {
	List(context.Context, ListBillingRequest) (ListBillingResponse, error)
	Detail(context.Context, snowflake.ID) (Detail, error)
	Create(context.Context, CreateBillingRequest) (Record, error)
	Update(context.Context, UpdateBillingRequest) (Record, error)
	Delete(context.Context, snowflake.ID) error
}

var (
	ErrNotFound           = errors.New("not_found")
	ErrUnknownTenant      = errors.New("unknown_tenant")
	ErrInvalidPaymentType = errors.New("invalid_payment_type")
	ErrInvalidQuantity    = errors.New("invalid_quantity")
)
