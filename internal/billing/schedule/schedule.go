// Package schedule computes billing-cycle dates for billing contracts.
// All functions are pure and never return errors: unparsable or missing
// dates degrade to display sentinels, which the dashboard renders as-is.
package schedule

import (
	"fmt"
	"math"
	"time"
)

// Display sentinels. These are part of the calculator's contract with the
// presentation layer and sort with a fixed precedence (see CompareComputed).
const (
	NotApplicable = "—"
	Ended         = "Ended"
	NoPeriod      = "N/A"
)

// PaymentType enumerates how a billing contract is charged.
type PaymentType string

const (
	PaymentOneTime  PaymentType = "OneTime"
	PaymentMonthly  PaymentType = "Monthly"
	PaymentAnnually PaymentType = "Annually"
)

// Terms is the slice of a billing record the calculator reads. Dates are
// ISO-8601 strings; the empty string means the date is absent.
type Terms struct {
	PaymentType PaymentType
	StartDate   string
	EndDate     string
}

const isoDate = "2006-01-02"

// parseDate tags its result so callers can tell a usable date from an
// absent or malformed one. Both degrade to sentinels externally, but
// tests can observe the distinction through behavior. Dates are anchored
// in UTC so day arithmetic is not skewed by DST transitions.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(isoDate, value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dateOf truncates an instant to its calendar date in the instant's own
// location, re-anchored in UTC for comparison with parsed dates.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsEnded reports whether the contract's end date is strictly in the past
// at calendar-date granularity. The end date's own day does not count as
// ended. An absent or unparsable end date means not ended.
func IsEnded(terms Terms, asOf time.Time) bool {
	end, ok := parseDate(terms.EndDate)
	if !ok {
		return false
	}
	return dateOf(asOf).After(end)
}

// NextBillingMonth returns the next billing month as "YYYY-MM", or a
// sentinel: Ended for expired contracts, NotApplicable for one-time
// payments and open-ended annual contracts.
//
// Monthly contracts always bill in the current month; annual contracts
// bill in the end date's month.
func NextBillingMonth(terms Terms, asOf time.Time) string {
	if IsEnded(terms, asOf) {
		return Ended
	}
	switch terms.PaymentType {
	case PaymentOneTime:
		return NotApplicable
	case PaymentMonthly:
		return asOf.Format("2006-01")
	case PaymentAnnually:
		end, ok := parseDate(terms.EndDate)
		if !ok {
			return NotApplicable
		}
		return end.Format("2006-01")
	default:
		return NotApplicable
	}
}

// NextBillingDate returns the next billing date as "YYYY-MM-DD" on the
// caller's calendar, or NotApplicable. Unlike NextBillingMonth, an ended contract
// yields NotApplicable rather than Ended.
//
// Monthly contracts bill on the end date's day-of-month: the candidate in
// the current month, advanced one month when it is not in the future.
// The month advance normalizes overflow days, so an end day of 31 rolls
// a 30-day month into the 1st..3rd of the month after. Annual contracts
// bill one month before the end date.
func NextBillingDate(terms Terms, asOf time.Time) string {
	if IsEnded(terms, asOf) {
		return NotApplicable
	}
	switch terms.PaymentType {
	case PaymentOneTime:
		return NotApplicable
	case PaymentMonthly:
		end, ok := parseDate(terms.EndDate)
		if !ok {
			return NotApplicable
		}
		candidate := time.Date(asOf.Year(), asOf.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
		if !candidate.After(dateOf(asOf)) {
			candidate = time.Date(asOf.Year(), asOf.Month()+1, end.Day(), 0, 0, 0, 0, time.UTC)
		}
		return candidate.Format(isoDate)
	case PaymentAnnually:
		end, ok := parseDate(terms.EndDate)
		if !ok {
			return NotApplicable
		}
		return end.AddDate(0, -1, 0).Format(isoDate)
	default:
		return NotApplicable
	}
}

// ContractPeriod renders the span between two dates as
// "<months> months (<days> days)". The month count ignores the
// day-of-month (truncating, not rounding); the day count is the
// ceiling of the elapsed time in 24-hour days. Missing or unparsable
// dates, and end before start, yield NoPeriod.
func ContractPeriod(startDate, endDate string) string {
	start, ok := parseDate(startDate)
	if !ok {
		return NoPeriod
	}
	end, ok := parseDate(endDate)
	if !ok {
		return NoPeriod
	}
	if end.Before(start) {
		return NoPeriod
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	return fmt.Sprintf("%d months (%d days)", months, days)
}

// computedRank assigns the sentinel precedence used when sorting computed
// billing values: real values first, then NotApplicable, then Ended.
func computedRank(value string) int {
	switch value {
	case Ended:
		return 2
	case NotApplicable:
		return 1
	default:
		return 0
	}
}

// CompareComputed orders two computed billing values (months or dates)
// under ascending order: real values lexicographically, then the
// NotApplicable sentinel, then Ended. Descending sorts reverse this
// order wholesale.
func CompareComputed(a, b string) int {
	ra, rb := computedRank(a), computedRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	if ra != 0 {
		return 0
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
