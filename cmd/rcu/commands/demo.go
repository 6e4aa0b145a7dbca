package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/heritage-io/rcu-client/internal/constants"
	"github.com/heritage-io/rcu-client/pkg/rcu"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	stepOK   = color.New(color.FgGreen, color.Bold)
	stepFail = color.New(color.FgRed, color.Bold)
	banner   = color.New(color.FgCyan, color.Bold)
)

// NewDemoCommand creates the demo command. It walks the four core RCU
// integration calls in order: authenticate, list heritage sites, submit a
// visitor permit, and book an event.
func NewDemoCommand() *cobra.Command {
	var (
		visitorName string
		nationality string
		visitDate   string
		eventID     string
		attendees   int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the four-step RCU API walkthrough",
		Long: `Exercise the RCU API end to end: obtain an access token, list the
heritage sites registry, submit a sample visitor permit, and book a
sample event.

Authentication failure aborts the run. Failures in later steps are
reported but do not stop the remaining steps.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			banner.Println("RCU API Demonstration")
			banner.Println(strings.Repeat("=", 50))

			client, err := CreateClient()
			if err != nil {
				return err
			}

			// Step 1: authenticate. Nothing else can run without a token,
			// so this failure is fatal.
			fmt.Println("\n1. Authenticating...")

			if err := client.Authenticate(ctx); err != nil {
				stepFail.Printf("%s Authentication failed: %v\n", constants.CrossMark, err)
				fmt.Printf("  (API key: %s, client ID: %s)\n",
					maskCredential(viper.GetString("api_key")),
					viper.GetString("client_id"))

				return fmt.Errorf("cannot continue without authentication: %w", err)
			}

			stepOK.Printf("%s Authentication successful\n", constants.CheckMark)

			// Step 2: heritage sites.
			fmt.Println("\n2. Retrieving heritage sites...")

			sites, err := client.HeritageSites().List(ctx, nil)
			if err != nil {
				stepFail.Printf("%s Failed to retrieve heritage sites: %v\n", constants.CrossMark, err)
			} else {
				stepOK.Printf("%s Retrieved %d heritage sites\n", constants.CheckMark, sites.Count())

				for _, site := range sites.Sites {
					fmt.Printf("  - %s (%s)\n", site.Name, site.Region)
				}
			}

			// Step 3: visitor permit.
			fmt.Println("\n3. Submitting visitor permit...")

			visitor := &rcu.VisitorInfo{
				Name:        visitorName,
				Nationality: nationality,
				VisitDate:   visitDate,
				Purpose:     "Heritage site tour",
			}

			permit, err := client.Permits().Submit(ctx, visitor)
			if err != nil {
				stepFail.Printf("%s Permit submission failed: %v\n", constants.CrossMark, err)
			} else {
				stepOK.Printf("%s Permit submitted: %s\n", constants.CheckMark, permit.PermitID)
			}

			// Step 4: event booking.
			fmt.Println("\n4. Booking event...")

			booking, err := client.Events().Book(ctx, eventID, attendees)
			if err != nil {
				stepFail.Printf("%s Event booking failed: %v\n", constants.CrossMark, err)
			} else {
				stepOK.Printf("%s Event booked: %s\n", constants.CheckMark, booking.BookingID)
			}

			fmt.Println()
			banner.Println(strings.Repeat("=", 50))
			banner.Println("Demonstration complete")

			return nil
		},
	}

	cmd.Flags().StringVar(&visitorName, "visitor-name", "John Doe", "sample visitor name")
	cmd.Flags().StringVar(&nationality, "nationality", "US", "sample visitor nationality")
	cmd.Flags().StringVar(&visitDate, "visit-date", "2024-01-15", "sample visit date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&eventID, "event-id", "evt_12345", "sample event ID")
	cmd.Flags().IntVar(&attendees, "attendees", 2, "sample attendee count")

	return cmd
}

// maskCredential hides all but the first four characters of a credential.
func maskCredential(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	if len(value) <= 4 {
		return constants.MaskedSecret
	}

	return value[:4] + constants.MaskedSecret
}
