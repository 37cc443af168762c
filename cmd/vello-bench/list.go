package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/vellobench/internal/bench"
	"github.com/cwbudde/vellobench/internal/simd"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalogued benchmarks and supported SIMD levels",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("SIMD levels:")
		for _, l := range simd.Available() {
			fmt.Printf("  %-12s %s\n", l.Suffix(), l.DisplayName())
		}
		fmt.Println()
		fmt.Println("Benchmarks:")
		for _, in := range bench.List() {
			fmt.Printf("  %s\n", in.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
