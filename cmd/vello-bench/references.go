package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var referencesCmd = &cobra.Command{
	Use:   "references",
	Short: "Manage stored reference sets",
}

var referencesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored reference sets, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		infos, err := store.List()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("No reference sets stored.")
			return nil
		}
		for _, in := range infos {
			line := fmt.Sprintf("%-30s %s  %4d results", in.Name, in.CreatedAt.Format("2006-01-02 15:04"), in.Count)
			if in.Platform != nil {
				line += fmt.Sprintf("  %s/%s", in.Platform.OS, in.Platform.Arch)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var referencesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the results of a reference set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		results, err := store.Load(args[0])
		if err != nil {
			return err
		}
		for _, res := range results {
			name := res.ID + "_" + res.SimdVariant
			fmt.Printf("%50s  %s  (%d iterations)\n", name, formatTime(res.Statistics.MeanNS), res.Statistics.Iterations)
		}
		return nil
	},
}

var referencesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a reference set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted reference set %q\n", args[0])
		return nil
	},
}

func init() {
	referencesCmd.PersistentFlags().StringVar(&refDir, "ref-dir", "", "Reference set directory (default: per-user config dir)")
	referencesCmd.AddCommand(referencesListCmd, referencesShowCmd, referencesDeleteCmd)
	rootCmd.AddCommand(referencesCmd)
}
