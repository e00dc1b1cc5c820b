// Package query implements the generic filter/sort/paginate pipeline shared
// by every list operation. Entity kinds parameterize the engine with a
// Definition: a table of named filter predicates, named comparators, and
// sort-key aliases. The engine itself never returns an error; malformed
// filter or sort input degrades to a no-op.
package query

import (
	"sort"
	"strings"
)

// Order is a sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Sort names a logical sort field and a direction.
type Sort struct {
	Field string `json:"field"`
	Order Order  `json:"order"`
}

// Request carries pagination, filter, and sort parameters for one listing.
// Filter values equal to the empty string mean "no filter for this key".
type Request struct {
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	Filters map[string]string `json:"filters,omitempty"`
	Sort    *Sort             `json:"sort,omitempty"`
}

// Meta describes the pagination window of a Result.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Result is one page of records plus pagination metadata.
type Result[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// FilterFunc reports whether a record matches a filter value.
type FilterFunc[T any] func(record T, value string) bool

// CompareFunc orders two records: negative when a sorts before b under
// ascending order, zero when they are equivalent.
type CompareFunc[T any] func(a, b T) int

// Definition is the per-entity strategy table driving the engine.
type Definition[T any] struct {
	// Filters maps filter keys to predicates. Keys absent from the table
	// are ignored.
	Filters map[string]FilterFunc[T]
	// Sorters maps sort fields (after alias resolution) to comparators.
	// Unknown fields preserve the incoming order.
	Sorters map[string]CompareFunc[T]
	// Aliases remaps logical sort keys to storage fields, e.g.
	// "paymentSettings" -> "paymentType".
	Aliases map[string]string
}

// Run applies filters, sorting, and pagination to a snapshot of records.
// The input slice is not mutated.
func Run[T any](records []T, req Request, def Definition[T]) Result[T] {
	filtered := make([]T, 0, len(records))
	filtered = append(filtered, records...)

	for key, value := range req.Filters {
		if value == "" {
			continue
		}
		predicate, ok := def.Filters[key]
		if !ok {
			continue
		}
		kept := filtered[:0]
		for _, record := range filtered {
			if predicate(record, value) {
				kept = append(kept, record)
			}
		}
		filtered = kept
	}

	if req.Sort != nil && req.Sort.Field != "" {
		field := req.Sort.Field
		if alias, ok := def.Aliases[field]; ok {
			field = alias
		}
		if compare, ok := def.Sorters[field]; ok {
			desc := req.Sort.Order == OrderDesc
			sort.SliceStable(filtered, func(i, j int) bool {
				c := compare(filtered[i], filtered[j])
				if desc {
					c = -c
				}
				return c < 0
			})
		}
	}

	return paginate(filtered, req.Page, req.Limit)
}

func paginate[T any](records []T, page, limit int) Result[T] {
	total := len(records)
	meta := Meta{Total: total, Page: page, Limit: limit}
	if limit <= 0 {
		return Result[T]{Data: []T{}, Meta: meta}
	}
	// Ceiling without the (total + limit - 1) form, which overflows for
	// limits near MaxInt.
	meta.TotalPages = total / limit
	if total%limit != 0 {
		meta.TotalPages++
	}

	start := (page - 1) * limit
	if start < 0 || start >= total {
		return Result[T]{Data: []T{}, Meta: meta}
	}
	end := start + limit
	if end > total {
		end = total
	}
	return Result[T]{Data: records[start:end], Meta: meta}
}

// Contains builds a case-insensitive substring predicate over one field.
func Contains[T any](field func(T) string) FilterFunc[T] {
	return func(record T, value string) bool {
		return strings.Contains(
			strings.ToLower(field(record)),
			strings.ToLower(value),
		)
	}
}

// ContainsAny builds a case-insensitive substring predicate matching when
// any of the given fields contains the value. Used for unified text search.
func ContainsAny[T any](fields ...func(T) string) FilterFunc[T] {
	return func(record T, value string) bool {
		needle := strings.ToLower(value)
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(record)), needle) {
				return true
			}
		}
		return false
	}
}

// Equals builds an exact-match predicate over one field. Used for
// enum-typed fields such as status or payment type.
func Equals[T any](field func(T) string) FilterFunc[T] {
	return func(record T, value string) bool {
		return field(record) == value
	}
}

// ByString builds a comparator over a string field. Missing values are the
// empty string and therefore sort first under ascending order.
func ByString[T any](field func(T) string) CompareFunc[T] {
	return func(a, b T) int {
		return strings.Compare(field(a), field(b))
	}
}

// ByInt builds a comparator over an integer field.
func ByInt[T any](field func(T) int) CompareFunc[T] {
	return func(a, b T) int {
		av, bv := field(a), field(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
}

// ByDate builds a comparator over an ISO-8601 date string field. Values
// that are absent or fail to parse sort after every valid date under
// ascending order.
func ByDate[T any](field func(T) string) CompareFunc[T] {
	return func(a, b T) int {
		av, aok := parseISODate(field(a))
		bv, bok := parseISODate(field(b))
		switch {
		case aok && bok:
			if av.Before(bv) {
				return -1
			}
			if av.After(bv) {
				return 1
			}
			return 0
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	}
}
