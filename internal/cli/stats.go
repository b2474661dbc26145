package cli

import (
	"context"
	"customer-directory-service/internal/domain"
	"customer-directory-service/internal/services"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func StatsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate counts over the customer directory",
		Long:  `Print the total customer count, coordinate and rental coverage, and per-day customer counts.`,
		Example: `  custdir stats
  custdir stats --source sqlite --db data/customers.db`,
		Args: cobra.NoArgs,
	}

	command.RunE = func(cmd *cobra.Command, args []string) error {
		return withDirectory(cmd, func(ctx context.Context, svc *services.DirectoryService) error {
			stats, err := svc.DatabaseStats(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Customers:        %s\n", humanize.Comma(int64(stats.TotalCustomers)))
			fmt.Fprintf(w, "With coordinates: %s (%s%%)\n",
				humanize.Comma(int64(stats.WithCoordinates)), humanize.FtoaWithDigits(stats.CoordinatesCoverage, 1))
			fmt.Fprintf(w, "With rentals:     %s (%s%%)\n",
				humanize.Comma(int64(stats.WithRentalItems)), humanize.FtoaWithDigits(stats.RentalDataCoverage, 1))
			fmt.Fprintln(w, "By day:")
			for _, d := range domain.DeliveryDays {
				fmt.Fprintf(w, "  %-10s %s\n", d, humanize.Comma(int64(stats.ByDay[d])))
			}
			return nil
		})
	}

	return command
}
