package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"sweeper/internal/classify"
	"sweeper/internal/suggest"
	"sweeper/internal/ui"
)

var suggestJSON bool

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show ranked cleanup suggestions",
	Long: `Scans, classifies, and prints the grouped cleanup suggestions in
rank order, plus the standalone large-file report. Nothing is deleted;
use "sweeper clean" to act on the suggestions.`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Emit suggestions as JSON")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	res, err := runPipeline(context.Background())
	if err != nil {
		return err
	}

	eng := newEngine(res)
	suggestions := eng.Suggest(res.records)
	large := eng.LargeFiles(res.records)

	if suggestJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Suggestions []suggest.Suggestion  `json:"suggestions"`
			LargeFiles  []classify.Classified `json:"large_files"`
		}{suggestions, large})
	}

	printSuggestions(suggestions, large)
	return nil
}

func printSuggestions(suggestions []suggest.Suggestion, large []classify.Classified) {
	header := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	dim := lipgloss.NewStyle().Foreground(ui.ColorTextDim)

	if len(suggestions) == 0 {
		fmt.Println(dim.Render("  Nothing to clean up — disk looks tidy."))
	} else {
		fmt.Println(header.Render("  " + ui.IconDiamond + " Suggestions"))
		var total int64
		for i, s := range suggestions {
			fmt.Printf("    %d. %-24s %4d files  %10s  %s\n",
				i+1, s.Label, len(s.Records), ui.FormatSize(s.TotalSize),
				ui.SafetyBadge(s.SafetyName))
			fmt.Println(dim.Render("       " + s.Rationale))
			total += s.TotalSize
		}
		fmt.Println(dim.Render(fmt.Sprintf("    reclaimable: %s", ui.FormatSize(total))))
	}

	if len(large) > 0 {
		fmt.Println(header.Render("\n  " + ui.IconDiamond + " Largest files"))
		const maxShow = 15
		for i, c := range large {
			if i == maxShow {
				fmt.Println(dim.Render(fmt.Sprintf("    … and %d more", len(large)-maxShow)))
				break
			}
			fmt.Printf("    %10s  %s\n", ui.FormatSize(c.Record.Size), c.Record.Path)
		}
	}
}
