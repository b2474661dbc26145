package cli

import (
	"context"
	"customer-directory-service/internal/services"

	"github.com/spf13/cobra"
)

func SearchCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search customers by number, name, address or city",
		Long:  `Case-insensitive substring search over customer number, name, address and city. Without QUERY every customer is listed.`,
		Example: `  custdir search anderson
  custdir search`,
		Args: cobra.MaximumNArgs(1),
	}

	command.RunE = func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		return withDirectory(cmd, func(ctx context.Context, svc *services.DirectoryService) error {
			set, err := svc.SearchCustomers(ctx, query)
			if err != nil {
				return err
			}
			return printCustomers(cmd.OutOrStdout(), set)
		})
	}

	return command
}
