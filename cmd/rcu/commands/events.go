package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewEventsCommand creates the events command group
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Work with event bookings",
	}

	cmd.AddCommand(newEventsBookCommand())
	cmd.AddCommand(newEventsGetBookingCommand())

	return cmd
}

func newEventsBookCommand() *cobra.Command {
	var attendees int

	cmd := &cobra.Command{
		Use:   "book EVENT_ID",
		Short: "Book an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			booking, err := client.Events().Book(ctx, args[0], attendees)
			if err != nil {
				return fmt.Errorf("failed to book event: %w", err)
			}

			return renderOutput(booking, func() error {
				fmt.Printf("Event booked: %s (status: %s)\n", booking.BookingID, booking.Status)

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&attendees, "attendees", 1, "number of attendees")

	return cmd
}

func newEventsGetBookingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get-booking BOOKING_ID",
		Short: "Show an event booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			booking, err := client.Events().GetBooking(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get event booking: %w", err)
			}

			return renderOutput(booking, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Booking ID", booking.BookingID)
				_ = table.Append("Event ID", booking.EventID)
				_ = table.Append("Attendees", fmt.Sprintf("%d", booking.AttendeeCount))
				_ = table.Append("Status", booking.Status)

				if booking.ConfirmedAt != nil {
					_ = table.Append("Confirmed at", booking.ConfirmedAt.Format(time.RFC3339))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}
