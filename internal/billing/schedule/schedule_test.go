package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestIsEnded(t *testing.T) {
	tests := []struct {
		name    string
		endDate string
		asOf    string
		want    bool
	}{
		{"past end date", "2024-12-31", "2025-06-15", true},
		{"future end date", "2026-12-31", "2025-06-15", false},
		{"same day is not ended", "2025-06-15", "2025-06-15", false},
		{"day after end is ended", "2025-06-14", "2025-06-15", true},
		{"absent end date", "", "2025-06-15", false},
		{"malformed end date", "31/12/2024", "2025-06-15", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := Terms{PaymentType: PaymentMonthly, EndDate: tt.endDate}
			assert.Equal(t, tt.want, IsEnded(terms, date(tt.asOf)))
		})
	}
}

func TestNextBillingMonth(t *testing.T) {
	asOf := date("2025-06-15")
	tests := []struct {
		name  string
		terms Terms
		want  string
	}{
		{"ended wins over payment type", Terms{PaymentType: PaymentMonthly, EndDate: "2024-01-31"}, Ended},
		{"ended wins even for one-time", Terms{PaymentType: PaymentOneTime, EndDate: "2024-01-31"}, Ended},
		{"one-time has no billing month", Terms{PaymentType: PaymentOneTime, StartDate: "2025-01-01"}, NotApplicable},
		{"monthly bills in current month", Terms{PaymentType: PaymentMonthly, EndDate: "2026-03-31"}, "2025-06"},
		{"monthly open-ended still current month", Terms{PaymentType: PaymentMonthly}, "2025-06"},
		{"annually bills in end month", Terms{PaymentType: PaymentAnnually, StartDate: "2023-02-01", EndDate: "2026-01-31"}, "2026-01"},
		{"annually open-ended", Terms{PaymentType: PaymentAnnually}, NotApplicable},
		{"unknown payment type", Terms{PaymentType: "Weekly"}, NotApplicable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextBillingMonth(tt.terms, asOf))
		})
	}
}

func TestNextBillingMonthIsPure(t *testing.T) {
	terms := Terms{PaymentType: PaymentAnnually, StartDate: "2023-02-01", EndDate: "2026-01-31"}
	asOf := date("2025-06-15")
	first := NextBillingMonth(terms, asOf)
	second := NextBillingMonth(terms, asOf)
	assert.Equal(t, first, second)
}

func TestNextBillingDate(t *testing.T) {
	tests := []struct {
		name  string
		terms Terms
		asOf  string
		want  string
	}{
		// ended contracts yield the sentinel, not "Ended", on the date-grained variant
		{"ended", Terms{PaymentType: PaymentMonthly, EndDate: "2024-01-31"}, "2025-06-15", NotApplicable},
		{"one-time", Terms{PaymentType: PaymentOneTime, StartDate: "2025-01-01"}, "2025-06-15", NotApplicable},
		{"monthly open-ended", Terms{PaymentType: PaymentMonthly}, "2025-06-15", NotApplicable},
		{"monthly upcoming day this month", Terms{PaymentType: PaymentMonthly, EndDate: "2026-02-20"}, "2025-06-15", "2025-06-20"},
		{"monthly day already passed", Terms{PaymentType: PaymentMonthly, EndDate: "2026-02-10"}, "2025-06-15", "2025-07-10"},
		{"monthly same day advances", Terms{PaymentType: PaymentMonthly, EndDate: "2026-02-15"}, "2025-06-15", "2025-07-15"},
		{"monthly end day 31 rolls over short month", Terms{PaymentType: PaymentMonthly, EndDate: "2026-05-31"}, "2025-01-31", "2025-03-03"},
		{"annually one month before end", Terms{PaymentType: PaymentAnnually, EndDate: "2026-01-31"}, "2025-06-15", "2025-12-31"},
		{"annually open-ended", Terms{PaymentType: PaymentAnnually}, "2025-06-15", NotApplicable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextBillingDate(tt.terms, date(tt.asOf)))
		})
	}
}

func TestContractPeriod(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"typical year", "2023-01-15", "2024-01-14", "12 months (364 days)"},
		{"truncating month count", "2023-01-31", "2023-03-01", "2 months (29 days)"},
		{"same day", "2023-05-10", "2023-05-10", "0 months (0 days)"},
		{"missing start", "", "2024-01-14", NoPeriod},
		{"missing end", "2023-01-15", "", NoPeriod},
		{"malformed", "2023-13-45", "2024-01-14", NoPeriod},
		{"end before start", "2024-01-14", "2023-01-15", NoPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContractPeriod(tt.start, tt.end))
		})
	}
}

func TestCompareComputed(t *testing.T) {
	// total order: real values ascending, then "—", then "Ended"
	assert.Negative(t, CompareComputed("2025-01", "2025-02"))
	assert.Positive(t, CompareComputed("2025-02", "2025-01"))
	assert.Zero(t, CompareComputed("2025-01", "2025-01"))

	assert.Negative(t, CompareComputed("2099-12", NotApplicable))
	assert.Negative(t, CompareComputed(NotApplicable, Ended))
	assert.Negative(t, CompareComputed("2099-12", Ended))
	assert.Positive(t, CompareComputed(Ended, "2000-01"))
	assert.Zero(t, CompareComputed(Ended, Ended))
	assert.Zero(t, CompareComputed(NotApplicable, NotApplicable))
}
