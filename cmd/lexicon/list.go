package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available word packs",
	Long: `Shows the built-in word packs plus any packs found in ~/.lexicon/packs.

A pack is a YAML file:

  id: rust
  title: Rust
  words: [cargo, crate, trait]`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	packs, err := loadPacks()
	if err != nil {
		return err
	}

	list := packs.Packs()
	if len(list) == 0 {
		fmt.Println("No word packs available.")
		return nil
	}

	fmt.Println("Available word packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range list {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "ID", "Words", "Title")
	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, p := range list {
		title := p.Title
		if p.Source != "" {
			title += " (" + p.Source + ")"
		}
		fmt.Printf("  %-*s  %5d  %s\n", maxIDLen, p.ID, len(p.Words), title)
	}

	fmt.Println()
	fmt.Println("Run 'lexicon play --pack <id>' to play with a pack.")
	return nil
}
