package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/heritage-io/rcu-client/pkg/rcu"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPermitsCommand creates the permits command group
func NewPermitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permits",
		Short: "Work with visitor permits",
	}

	cmd.AddCommand(newPermitsSubmitCommand())
	cmd.AddCommand(newPermitsGetCommand())

	return cmd
}

func newPermitsSubmitCommand() *cobra.Command {
	var (
		name        string
		nationality string
		visitDate   string
		purpose     string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a visitor permit application",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			visitor := &rcu.VisitorInfo{
				Name:        name,
				Nationality: nationality,
				VisitDate:   visitDate,
				Purpose:     purpose,
			}

			permit, err := client.Permits().Submit(ctx, visitor)
			if err != nil {
				return fmt.Errorf("failed to submit visitor permit: %w", err)
			}

			return renderOutput(permit, func() error {
				fmt.Printf("Permit submitted: %s (status: %s)\n", permit.PermitID, permit.Status)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "visitor full name")
	cmd.Flags().StringVar(&nationality, "nationality", "", "visitor nationality")
	cmd.Flags().StringVar(&visitDate, "visit-date", "", "planned visit date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&purpose, "purpose", "", "purpose of the visit")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("visit-date")

	return cmd
}

func newPermitsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PERMIT_ID",
		Short: "Show a visitor permit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			permit, err := client.Permits().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get visitor permit: %w", err)
			}

			return renderOutput(permit, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Permit ID", permit.PermitID)
				_ = table.Append("Status", permit.Status)

				if permit.VisitorInfo != nil {
					_ = table.Append("Visitor", permit.VisitorInfo.Name)
					_ = table.Append("Nationality", permit.VisitorInfo.Nationality)
					_ = table.Append("Visit date", permit.VisitorInfo.VisitDate)
				}

				if permit.IssuedAt != nil {
					_ = table.Append("Issued at", permit.IssuedAt.Format(time.RFC3339))
				}

				if permit.ExpiresAt != nil {
					_ = table.Append("Expires at", permit.ExpiresAt.Format(time.RFC3339))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}
