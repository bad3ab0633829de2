package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// setsCmd represents the sets command
var setsCmd = &cobra.Command{
	Use:   "sets [code]",
	Short: "List furniture sets or expand one set",
	Long:  `Without arguments lists every furniture set. With a code, resolves each item of the matching sets against the catalog.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc, err := rt.service()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if len(args) == 0 {
			sets, err := svc.Sets(ctx)
			if err != nil {
				return err
			}
			fmt.Println("\n--- Furniture Sets ---")
			for _, set := range sets {
				fmt.Printf("%-4s %-22s %d items\n", set.Code, set.RoomType, set.ItemCount())
			}
			return nil
		}

		expansions, err := svc.ExpandSet(ctx, args[0])
		if err != nil {
			return err
		}
		if len(expansions) == 0 {
			return fmt.Errorf("unknown set code: %s", args[0])
		}

		for _, exp := range expansions {
			fmt.Printf("\n--- Set %s (%s), %d items ---\n", exp.Code, exp.RoomType, exp.ItemCount)
			for _, item := range exp.Items {
				switch {
				case item.InCatalog:
					fmt.Printf("\033[32m%-16s\033[0m %s : %s\n", item.Name, item.FamilyName, item.TypeName)
				case item.Suggestion != "":
					fmt.Printf("\033[31m%-16s\033[0m not in catalog (did you mean %q?)\n", item.Name, item.Suggestion)
				default:
					fmt.Printf("\033[31m%-16s\033[0m not in catalog\n", item.Name)
				}
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(setsCmd)
}
