package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilewalk/internal/sequences"
	"github.com/vovakirdan/tilewalk/internal/storage"
)

var seenCmd = &cobra.Command{
	Use:   "seen",
	Short: "Show which sequences were already shown",
	Long: `Lists the sequences recorded in the database, with the time each was
first shown. Sequences in the manifest that were not shown yet are listed
as pending.

Examples:
  tilewalk seen
  tilewalk seen clear
  tilewalk seen --db ./tilewalk.db`,
	Args: cobra.NoArgs,
	Run:  runSeen,
}

var seenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every seen sequence",
	Long:  `Deletes all seen flags so every sequence plays again.`,
	Args:  cobra.NoArgs,
	Run:   runSeenClear,
}

func init() {
	seenCmd.AddCommand(seenClearCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runSeen(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	entries, err := store.Seen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading seen sequences: %v\n", err)
		os.Exit(1)
	}

	catalog, err := sequences.LoadManifest(flagSequences)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sequences: %v\n", err)
		os.Exit(1)
	}

	seen := make(map[string]bool, len(entries))
	fmt.Printf("  %-16s  %s\n", "Sequence", "First shown")
	fmt.Printf("  %-16s  %s\n", "--------", "-----------")
	for _, e := range entries {
		seen[e.SequenceID] = true
		fmt.Printf("  %-16s  %s\n", e.SequenceID, e.SeenAt.Format("2006-01-02 15:04"))
	}
	for _, id := range catalog.IDs() {
		if !seen[id] {
			fmt.Printf("  %-16s  %s\n", id, "pending")
		}
	}
}

func runSeenClear(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing seen sequences: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("All sequences will play again.")
}
