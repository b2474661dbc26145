package cli

import (
	"context"
	"customer-directory-service/internal/services"

	"github.com/spf13/cobra"
)

func DayCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "day [DAY]",
		Short: "List mappable customers delivered on a day",
		Long:  `List customers with usable coordinates whose trip days include DAY. DAY is a weekday name or a trip code (M T W H F S).`,
		Example: `  custdir day Wednesday
  custdir day H`,
		Args: cobra.ExactArgs(1),
	}

	command.RunE = func(cmd *cobra.Command, args []string) error {
		return withDirectory(cmd, func(ctx context.Context, svc *services.DirectoryService) error {
			set, err := svc.CustomersByDay(ctx, args[0])
			if err != nil {
				return err
			}
			return printCustomers(cmd.OutOrStdout(), set)
		})
	}

	return command
}
