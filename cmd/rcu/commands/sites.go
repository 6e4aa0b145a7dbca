package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/heritage-io/rcu-client/pkg/rcu"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSitesCommand creates the sites command group
func NewSitesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "Work with the heritage sites registry",
	}

	cmd.AddCommand(newSitesListCommand())
	cmd.AddCommand(newSitesGetCommand())

	return cmd
}

func newSitesListCommand() *cobra.Command {
	var (
		region string
		status string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List heritage sites",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			opts := &rcu.ListOptions{
				Region: region,
				Status: status,
				Limit:  limit,
			}

			sites, err := client.HeritageSites().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list heritage sites: %w", err)
			}

			return renderOutput(sites, func() error {
				if sites.Count() == 0 {
					fmt.Println("No heritage sites found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Site ID", "Name", "Region", "Period", "Status", "UNESCO")

				for _, site := range sites.Sites {
					unesco := ""
					if site.UNESCO {
						unesco = "yes"
					}

					_ = table.Append(site.SiteID, site.Name, site.Region, site.Period, site.Status, unesco)
				}

				_ = table.Render()

				fmt.Printf("\nRetrieved %d heritage sites\n", sites.Count())

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "filter by region")
	cmd.Flags().StringVar(&status, "status", "", "filter by site status")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of sites to return")

	return cmd
}

func newSitesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SITE_ID",
		Short: "Show a heritage site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			site, err := client.HeritageSites().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get heritage site: %w", err)
			}

			return renderOutput(site, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Site ID", site.SiteID)
				_ = table.Append("Name", site.Name)
				_ = table.Append("Region", site.Region)
				_ = table.Append("Period", site.Period)
				_ = table.Append("Status", site.Status)
				_ = table.Append("UNESCO listed", fmt.Sprintf("%t", site.UNESCO))

				if site.Description != "" {
					_ = table.Append("Description", site.Description)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}
