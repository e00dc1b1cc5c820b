// Package domain contains billing contract models and service contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/northfieldlabs/tenantdesk/internal/billing/schedule"
	"github.com/shopspring/decimal"
)

// DueDayEndOfMonth is the sentinel for contracts that bill on the last
// day of the month instead of a fixed day.
const DueDayEndOfMonth = "EndOfMonth"

// ContractLine is one device-type entry of a billing contract.
type ContractLine struct {
	DeviceType string          `json:"deviceType"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// Total returns quantity times unit price.
func (l ContractLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Record is one billing contract line for a tenant. Dates are ISO-8601
// strings; the empty string means the date is absent. DueDay is "1".."31"
// or DueDayEndOfMonth; DueMonth is 1..12, zero when unset. Both are kept
// for display even though the canonical calculator does not read them.
type Record struct {
	ID             snowflake.ID         `json:"id"`
	TenantID       snowflake.ID         `json:"tenantId"`
	PaymentType    schedule.PaymentType `json:"paymentType"`
	StartDate      string               `json:"startDate,omitempty"`
	EndDate        string               `json:"endDate,omitempty"`
	DueDay         string               `json:"dueDay,omitempty"`
	DueMonth       int                  `json:"dueMonth,omitempty"`
	DeviceContract []ContractLine       `json:"deviceContract"`
	Description    string               `json:"description,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// Terms extracts the slice of the record the billing calculator reads.
func (r Record) Terms() schedule.Terms {
	return schedule.Terms{
		PaymentType: r.PaymentType,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

// Row is a billing record joined with its tenant's name and the computed
// billing fields, evaluated once at listing time.
type Row struct {
	Record
	TenantName       string `json:"tenantName"`
	NextBillingMonth string `json:"nextBillingMonth"`
	NextBillingDate  string `json:"nextBillingDate"`
	ContractPeriod   string `json:"contractPeriod"`
}
