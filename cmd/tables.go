package cmd

import (
	"fmt"
	"os"

	"room-furnisher/feature/furnishing/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tablesCmd groups furniture table commands
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Export or publish the furniture tables",
}

// tablesPublishCmd represents the tables publish command
var tablesPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Copy the configured tables to another source",
	Long:  `Reads the furniture tables from the configured source and writes them to storage, database or a YAML file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("to")
		output, _ := cmd.Flags().GetString("output")

		rt, err := bootstrap(target == source.KindDatabase)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()
		ctx := cmd.Context()

		src, err := rt.source()
		if err != nil {
			return err
		}
		// Reject malformed tables before writing them anywhere.
		if _, err := source.Load(ctx, src); err != nil {
			return err
		}

		switch target {
		case source.KindStorage:
			if rt.store == nil {
				return fmt.Errorf("storage is not configured")
			}
			cfg := rt.cfg.Furnishing.Source
			dst := source.NewStorage(rt.store, rt.cfg.Storage.Bucket, cfg.TypesObject, cfg.SetsObject)
			if err := dst.Publish(ctx, src); err != nil {
				return err
			}
		case source.KindDatabase:
			dst := source.NewDatabase(rt.db)
			if err := dst.Migrate(ctx); err != nil {
				return err
			}
			if err := dst.Publish(ctx, src); err != nil {
				return err
			}
		case source.KindFile:
			data, err := source.MarshalFile(ctx, src)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
		default:
			return fmt.Errorf("unknown publish target %q", target)
		}

		rt.logger.Info("Furniture tables published", zap.String("from", src.Name()), zap.String("to", target))
		return nil
	},
}

func init() {
	tablesPublishCmd.Flags().String("to", source.KindFile, "Target: storage, database or file")
	tablesPublishCmd.Flags().StringP("output", "o", "-", "Output path of the file target")
	tablesCmd.AddCommand(tablesPublishCmd)
	RootCmd.AddCommand(tablesCmd)
}
