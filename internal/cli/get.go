package cli

import (
	"context"
	"customer-directory-service/internal/domain"
	"customer-directory-service/internal/services"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     "get [CUSTOMER_NUMBER]",
		Short:   "Print one customer record as JSON",
		Example: `  custdir get 100412`,
		Args:    cobra.ExactArgs(1),
	}

	command.RunE = func(cmd *cobra.Command, args []string) error {
		return withDirectory(cmd, func(ctx context.Context, svc *services.DirectoryService) error {
			c, ok, err := svc.GetCustomer(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("customer %q not found", args[0])
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				CustomerNumber string `json:"customer_number"`
				*domain.Customer
			}{c.ID, c})
		})
	}

	return command
}
