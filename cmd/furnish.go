package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"room-furnisher/feature/furnishing"
	"room-furnisher/feature/furnishing/placement"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// furnishCmd represents the furnish command
var furnishCmd = &cobra.Command{
	Use:   "furnish",
	Short: "Move furniture into every room of the building model",
	Long: `Reads the furniture set code of each room, places one instance per set item
at the room's reference point and writes the furniture count. All changes are
committed together or not at all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		rt, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc, err := rt.service()
		if err != nil {
			return err
		}

		rt.logger.Info("Furnishing rooms...", zap.Bool("dry_run", dryRun))
		report, err := svc.Furnish(cmd.Context(), dryRun)
		if err != nil {
			return fmt.Errorf("furnishing failed: %w", err)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		printRunReport(report)
		return nil
	},
}

func printRunReport(report *furnishing.RunReport) {
	fmt.Println("\n--- Furnishing Report ---")
	fmt.Printf("Source:          %s\n", report.Source)
	fmt.Printf("Units:           %s\n", report.Units)
	fmt.Printf("Dry Run:         %v\n", report.DryRun)
	fmt.Printf("Rooms:           %d\n", len(report.Locations))
	fmt.Printf("Rooms Furnished: %d\n", report.RoomsFurnished)
	fmt.Printf("Items Placed:    %d\n", report.Placed)
	fmt.Printf("Execution Time:  %s\n", report.ExecutionTime)
	fmt.Println("-------------------------")

	for _, loc := range report.Locations {
		if loc.Status == placement.StatusSkipped {
			continue
		}
		count := "-"
		if loc.CountSet {
			count = fmt.Sprint(loc.Count)
		}
		fmt.Printf("%-10s set=%-4s placed=%-3d count=%s\n", loc.ID, loc.SetCode, loc.Placed, count)
		if len(loc.Missing) > 0 {
			fmt.Printf("\033[33m           missing: %s\033[0m\n", strings.Join(loc.Missing, ", "))
		}
	}
}

func init() {
	furnishCmd.Flags().Bool("dry-run", false, "Report what would be placed without committing")
	furnishCmd.Flags().Bool("json", false, "Output the full report as JSON")
	RootCmd.AddCommand(furnishCmd)
}
