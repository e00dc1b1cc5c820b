package main

import (
	"fmt"
	"strings"

	"github.com/northfieldlabs/tenantdesk/pkg/query"
	"github.com/spf13/cobra"
)

// queryFlags maps the shared listing flags onto a query.Request.
type queryFlags struct {
	page    int
	limit   int
	sortBy  string
	order   string
	filters []string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&f.limit, "limit", 20, "rows per page")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "field to sort by")
	cmd.Flags().StringVar(&f.order, "order", "asc", "sort order (asc or desc)")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "filter as key=value, repeatable")
}

func (f *queryFlags) request() (query.Request, error) {
	req := query.Request{
		Page:  f.page,
		Limit: f.limit,
	}

	if len(f.filters) > 0 {
		req.Filters = make(map[string]string, len(f.filters))
		for _, pair := range f.filters {
			key, value, ok := strings.Cut(pair, "=")
			if !ok || key == "" {
				return query.Request{}, fmt.Errorf("invalid filter %q, expected key=value", pair)
			}
			req.Filters[key] = value
		}
	}

	if f.sortBy != "" {
		order := query.OrderAsc
		switch strings.ToLower(f.order) {
		case "asc", "":
		case "desc":
			order = query.OrderDesc
		default:
			return query.Request{}, fmt.Errorf("invalid order %q, expected asc or desc", f.order)
		}
		req.Sort = &query.Sort{Field: f.sortBy, Order: order}
	}

	return req, nil
}
