package main

import (
	"context"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	billingdomain "github.com/northfieldlabs/tenantdesk/internal/billing/domain"
	devicedomain "github.com/northfieldlabs/tenantdesk/internal/device/domain"
	subscriptiondomain "github.com/northfieldlabs/tenantdesk/internal/subscription/domain"
	tenantdomain "github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	userdomain "github.com/northfieldlabs/tenantdesk/internal/user/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/query"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func listCommand() *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:       "list <entity>",
		Short:     "List records of one entity as JSON",
		Long:      "List tenants, devices, unregistered devices, subscriptions, users, or billing records.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"tenants", "devices", "unregistered", "subscriptions", "users", "billing"},
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			return run(func(ctx context.Context, s services) error {
				result, err := listEntity(ctx, s, args[0], req)
				if err != nil {
					return err
				}
				return printJSON(result)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func listEntity(ctx context.Context, s services, entity string, req query.Request) (any, error) {
	switch entity {
	case "tenants":
		return s.Tenants.List(ctx, tenantdomain.ListTenantRequest{Request: req})
	case "devices":
		return s.Devices.List(ctx, devicedomain.ListDeviceRequest{Request: req})
	case "unregistered":
		return s.Devices.ListUnregistered(ctx, req)
	case "subscriptions":
		return s.Subscriptions.List(ctx, subscriptiondomain.ListSubscriptionRequest{Request: req})
	case "users":
		return s.Users.List(ctx, userdomain.ListUserRequest{Request: req})
	case "billing":
		return s.Billing.List(ctx, billingdomain.ListBillingRequest{Request: req})
	default:
		return nil, fmt.Errorf("unknown entity %q", entity)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}
