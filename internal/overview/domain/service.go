// Package domain contains the dashboard overview contracts.
package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Overview aggregates the dashboard's landing numbers across all
// collections at evaluation time.
type Overview struct {
	Tenants             int            `json:"tenants"`
	TenantsByStatus     map[string]int `json:"tenantsByStatus"`
	Devices             int            `json:"devices"`
	DevicesByStatus     map[string]int `json:"devicesByStatus"`
	UnregisteredDevices int            `json:"unregisteredDevices"`
	Subscriptions       int            `json:"subscriptions"`
	Users               int            `json:"users"`

	BillingRecords        int            `json:"billingRecords"`
	BillingByPaymentType  map[string]int `json:"billingByPaymentType"`
	EndedContracts        int            `json:"endedContracts"`
	// MonthlyRecurringRevenue sums monthly contract line totals plus
	// one twelfth of annual line totals; one-time and ended contracts
	// are excluded.
	MonthlyRecurringRevenue decimal.Decimal `json:"monthlyRecurringRevenue"`
}

type Service interface {
	Overview(ctx context.Context) (Overview, error)
}
