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

// NewVisitorsCommand creates the visitors command group
func NewVisitorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visitors",
		Short: "Work with visitor registrations",
	}

	cmd.AddCommand(newVisitorsRegisterCommand())
	cmd.AddCommand(newVisitorsGetCommand())

	return cmd
}

func newVisitorsRegisterCommand() *cobra.Command {
	var (
		name        string
		nationality string
		email       string
		visitDate   string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a visitor",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			registration := &rcu.VisitorRegistration{
				Name:        name,
				Nationality: nationality,
				Email:       email,
				VisitDate:   visitDate,
			}

			visitor, err := client.Visitors().Register(ctx, registration)
			if err != nil {
				return fmt.Errorf("failed to register visitor: %w", err)
			}

			return renderOutput(visitor, func() error {
				fmt.Printf("Visitor registered: %s\n", visitor.VisitorID)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "visitor full name")
	cmd.Flags().StringVar(&nationality, "nationality", "", "visitor nationality")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&visitDate, "visit-date", "", "planned visit date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newVisitorsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VISITOR_ID",
		Short: "Show a registered visitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			visitor, err := client.Visitors().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get visitor: %w", err)
			}

			return renderOutput(visitor, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Visitor ID", visitor.VisitorID)
				_ = table.Append("Name", visitor.Name)
				_ = table.Append("Nationality", visitor.Nationality)
				_ = table.Append("Status", visitor.Status)

				if visitor.RegisteredAt != nil {
					_ = table.Append("Registered at", visitor.RegisteredAt.Format(time.RFC3339))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}
