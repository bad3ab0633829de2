package cmd

import (
	"fmt"
	"sort"

	"room-furnisher/feature/furnishing/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// modelCmd groups building model maintenance commands
var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Maintain the building model database",
}

// modelMigrateCmd represents the model migrate command
var modelMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the building model and table schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()
		ctx := cmd.Context()

		m := rt.model()
		if err := m.Migrate(ctx); err != nil {
			return err
		}
		if err := source.NewDatabase(rt.db).Migrate(ctx); err != nil {
			return err
		}

		missing, err := m.CheckSchema(ctx)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			tables := make([]string, 0, len(missing))
			for table := range missing {
				tables = append(tables, table)
			}
			sort.Strings(tables)
			for _, table := range tables {
				rt.logger.Error("Missing columns", zap.String("table", table), zap.Strings("columns", missing[table]))
			}
			return fmt.Errorf("schema check failed for %d tables", len(missing))
		}

		rt.logger.Info("Building model schema is up to date")
		return nil
	},
}

// modelSymbolsCmd represents the model symbols command
var modelSymbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Load the catalog's family symbols into the model",
	Long:  `Adds an inactive family symbol for every catalog entry the model does not have yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()
		ctx := cmd.Context()

		src, err := rt.source()
		if err != nil {
			return err
		}
		tables, err := source.Load(ctx, src)
		if err != nil {
			return err
		}

		added, err := rt.model().LoadSymbols(ctx, tables.Catalog)
		if err != nil {
			return err
		}
		rt.logger.Info("Family symbols loaded",
			zap.String("source", tables.Source),
			zap.Int("catalog", tables.Catalog.Len()),
			zap.Int("added", added),
		)
		return nil
	},
}

// modelRoomsCmd represents the model rooms command
var modelRoomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List rooms with their furniture set and count",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc, err := rt.service()
		if err != nil {
			return err
		}
		rooms, err := svc.Rooms(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("\n--- Rooms ---")
		for _, r := range rooms {
			count := "-"
			if r.HasCount {
				count = fmt.Sprint(r.Count)
			}
			placed := ""
			if !r.Placed {
				placed = " (unplaced)"
			}
			fmt.Printf("%-8s %-24s set=%-4s count=%-4s items=%d%s\n", r.Number, r.Name, r.SetCode, count, r.Instances, placed)
		}
		return nil
	},
}

func init() {
	modelCmd.AddCommand(modelMigrateCmd)
	modelCmd.AddCommand(modelSymbolsCmd)
	modelCmd.AddCommand(modelRoomsCmd)
	RootCmd.AddCommand(modelCmd)
}
