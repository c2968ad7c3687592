package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"fusion-site/internal/services"

	"github.com/spf13/cobra"
)

// newEventsCommand prints the event catalogue served by the site.
func newEventsCommand(eventService *services.EventService) *cobra.Command {
	var tag string

	command := &cobra.Command{
		Use:   "events",
		Short: "List the events shown in the gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := eventService.ListEvents(cmd.Context(), tag)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ORDER\tID\tYEAR\tIMAGES\tTAGS")
			for _, e := range events {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", e.Order, e.ID, e.Year, len(e.Images), strings.Join(e.Tags, ","))
			}
			return w.Flush()
		},
	}

	command.Flags().StringVar(&tag, "tag", "", "only list events carrying this tag")
	return command
}
