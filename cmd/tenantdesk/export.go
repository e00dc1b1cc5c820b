package main

import (
	"context"
	"fmt"
	"io"
	"os"

	billingdomain "github.com/northfieldlabs/tenantdesk/internal/billing/domain"
	devicedomain "github.com/northfieldlabs/tenantdesk/internal/device/domain"
	subscriptiondomain "github.com/northfieldlabs/tenantdesk/internal/subscription/domain"
	tenantdomain "github.com/northfieldlabs/tenantdesk/internal/tenant/domain"
	userdomain "github.com/northfieldlabs/tenantdesk/internal/user/domain"
	"github.com/northfieldlabs/tenantdesk/pkg/export"
	"github.com/spf13/cobra"
)

func exportCommand() *cobra.Command {
	flags := &queryFlags{}
	var outPath string

	cmd := &cobra.Command{
		Use:       "export <entity>",
		Short:     "Export one entity as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"tenants", "devices", "unregistered", "subscriptions", "users", "billing"},
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			// The export covers the full filtered set, not one page.
			req.Page = 1
			req.Limit = int(^uint(0) >> 1)

			var w io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return run(func(ctx context.Context, s services) error {
				switch args[0] {
				case "tenants":
					resp, err := s.Tenants.List(ctx, tenantdomain.ListTenantRequest{Request: req})
					if err != nil {
						return err
					}
					return export.WriteCSV(w, resp.Tenants, export.Columns(
						"id", "name", "slug", "email", "phone", "status", "language", "createdAt",
					))
				case "devices":
					resp, err := s.Devices.List(ctx, devicedomain.ListDeviceRequest{Request: req})
					if err != nil {
						return err
					}
					return export.WriteCSV(w, resp.Devices, export.Columns(
						"id", "tenantId", "tenantName", "serialNumber", "type", "firmware", "status", "registeredAt",
					))
				case "unregistered":
					resp, err := s.Devices.ListUnregistered(ctx, req)
					if err != nil {
						return err
					}
					return export.WriteCSV(w, resp.Devices, export.Columns(
						"id", "serialNumber", "type", "seenAt",
					))
				case "subscriptions":
					resp, err := s.Subscriptions.List(ctx, subscriptiondomain.ListSubscriptionRequest{Request: req})
					if err != nil {
						return err
					}
					return export.WriteCSV(w, resp.Subscriptions, export.Columns(
						"id", "tenantId", "tenantName", "plan", "status", "seats", "startDate", "endDate",
					))
				case "users":
					resp, err := s.Users.List(ctx, userdomain.ListUserRequest{Request: req})
					if err != nil {
						return err
					}
					return export.WriteCSV(w, resp.Users, export.Columns(
						"id", "tenantId", "tenantName", "name", "email", "role", "status",
					))
				case "billing":
					resp, err := s.Billing.List(ctx, billingdomain.ListBillingRequest{Request: req})
					if err != nil {
						return err
					}
					return export.WriteCSV(w, resp.Records, export.Columns(
						"id", "tenantId", "tenantName", "paymentType", "startDate", "endDate",
						"nextBillingMonth", "nextBillingDate", "contractPeriod",
					))
				default:
					return fmt.Errorf("unknown entity %q", args[0])
				}
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write CSV to file instead of stdout")
	return cmd
}
