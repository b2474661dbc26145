package cli

import (
	"context"
	"customer-directory-service/internal/adapters/sources"
	"customer-directory-service/internal/services"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportZstd   bool
)

func ExportCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded directory as a dataset file",
		Long: `Write the directory in dataset form, keyed by customer number in directory order.
The output can be read back with --dataset, compressed or not.`,
		Example: `  custdir export -o customers.json
  custdir export --source sqlite --zstd -o customers.json.zst`,
		Args: cobra.NoArgs,
	}

	command.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	command.Flags().BoolVar(&exportZstd, "zstd", false, "Compress the output with zstd")

	command.RunE = func(cmd *cobra.Command, args []string) error {
		return withDirectory(cmd, func(ctx context.Context, svc *services.DirectoryService) error {
			dir, _ := svc.Snapshot()

			data, err := dir.MarshalJSON()
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if exportZstd {
				if data, err = sources.Compress(data); err != nil {
					return fmt.Errorf("export: %w", err)
				}
			}

			if exportOutput == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d customers (%s) to %s\n",
				dir.Len(), humanize.Bytes(uint64(len(data))), exportOutput)
			return nil
		})
	}

	return command
}
