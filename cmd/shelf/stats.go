package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long: `Show catalog statistics: total, read and unread counts, the read
percentage, and the five most frequent authors.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	store := openStore()
	stats := store.Stats()

	if humanOutput {
		fmt.Printf("Total books:  %d\n", stats.Total)
		fmt.Printf("Read:         %d\n", stats.Read)
		fmt.Printf("Unread:       %d\n", stats.Unread)
		fmt.Printf("Read percent: %.1f%%\n", stats.ReadPercent)
		if len(stats.TopAuthors) > 0 {
			fmt.Println("\nTop authors:")
			for _, a := range stats.TopAuthors {
				fmt.Printf("  %3d  %s\n", a.Count, a.Author)
			}
		}
	} else {
		outputJSON(stats)
	}
	return nil
}
