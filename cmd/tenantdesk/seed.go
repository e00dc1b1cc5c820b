package main

import (
	"context"

	"github.com/spf13/cobra"
)

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Generate the fixture dataset and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// run seeds before invoking the callback, so a summary of the
			// generated dataset is all that is left to print.
			return run(func(ctx context.Context, s services) error {
				overview, err := s.Overview.Overview(ctx)
				if err != nil {
					return err
				}
				return printJSON(overview)
			})
		},
	}
}

func overviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Print dataset-wide counts and recurring revenue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, s services) error {
				overview, err := s.Overview.Overview(ctx)
				if err != nil {
					return err
				}
				return printJSON(overview)
			})
		},
	}
}
