package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/evcraddock/park-notes/internal/comment"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printNote prints a single note's full view in text format.
func printNote(v comment.View) {
	if v.IsEmpty() {
		fmt.Println("Note not found.")
		return
	}

	fmt.Printf("Note #%d\n", v.ID)
	fmt.Printf("  Park:     %d\n", v.LocationID)
	fmt.Printf("  Visitor:  %d\n", v.VisitorID)
	fmt.Printf("  Date:     %s\n", v.Date)
	fmt.Printf("  Title:    %s\n", v.Title)
	if v.Body != "" {
		fmt.Printf("\n  %s\n", v.Body)
	}
}

// printGroups prints per-park groups of notes in text format.
func printGroups(groups []comment.Group) {
	if len(groups) == 0 {
		fmt.Println("No notes.")
		return
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("Park #%d (%d notes)\n", g.LocationID, len(g.Notes))
		for _, n := range g.Notes {
			fmt.Printf("  [%s] #%d %s\n", n.Date, n.ID, truncate(n.Title, 60))
		}
	}
}

// printVisitorNotes prints a visitor's notes as a formatted table.
func printVisitorNotes(notes []comment.VisitorSummary) error {
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tPARK\tDATE\tTITLE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t----\t-----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, n := range notes {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", n.ID, n.LocationID, n.Date, truncate(n.Title, 40)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d notes\n", len(notes))
	return nil
}

// printSummaries prints search results as a formatted table.
func printSummaries(notes []comment.Summary) error {
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tDATE\tTITLE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t-----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, n := range notes {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", n.ID, n.Date, truncate(n.Title, 40)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d notes\n", len(notes))
	return nil
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
