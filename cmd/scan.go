package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/spf13/cobra"

	"sweeper/internal/ui"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan and classify files without changing anything",
	Long: `Walks the configured roots, classifies every file by category and
deletion safety, and prints a summary. Nothing is deleted.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Emit classified records as JSON")
}

func runScan(cmd *cobra.Command, args []string) error {
	res, err := runPipeline(context.Background())
	if err != nil {
		return err
	}

	if scanJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.records)
	}

	printDiskLine()
	printScanSummary(res)
	return nil
}

// printDiskLine shows usage of the partition holding the home directory.
func printDiskLine() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	u, err := disk.Usage(home)
	if err != nil {
		return
	}
	fmt.Printf("  Disk: %s used of %s (%.1f%%)\n\n",
		ui.FormatSize(int64(u.Used)), ui.FormatSize(int64(u.Total)), u.UsedPercent)
}

type tally struct {
	count int
	size  int64
}

func printScanSummary(res *scanResult) {
	byCategory := map[string]*tally{}
	bySafety := map[string]*tally{}
	var total tally

	add := func(m map[string]*tally, key string, size int64) {
		t := m[key]
		if t == nil {
			t = &tally{}
			m[key] = t
		}
		t.count++
		t.size += size
	}
	for _, c := range res.records {
		add(byCategory, c.CategoryName, c.Record.Size)
		add(bySafety, c.SafetyName, c.Record.Size)
		total.count++
		total.size += c.Record.Size
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	dim := lipgloss.NewStyle().Foreground(ui.ColorTextDim)

	fmt.Println(header.Render("  " + ui.IconDiamond + " Categories"))
	for _, name := range sortedKeys(byCategory) {
		t := byCategory[name]
		fmt.Printf("    %-14s %6d files  %10s\n", name, t.count, ui.FormatSize(t.size))
	}

	fmt.Println(header.Render("\n  " + ui.IconDiamond + " Safety"))
	for _, name := range []string{"safe", "user", "unknown", "critical"} {
		t := bySafety[name]
		if t == nil {
			continue
		}
		fmt.Printf("    %s %6d files  %10s\n",
			lipgloss.NewStyle().Foreground(ui.SafetyColor(name)).Render(fmt.Sprintf("%-14s", name)),
			t.count, ui.FormatSize(t.size))
	}

	fmt.Println(dim.Render(fmt.Sprintf("\n  %d entries visited, %d files recorded, %s total",
		res.scanned, total.count, ui.FormatSize(total.size))))
	if n := res.snap.Len(); n > 0 {
		fmt.Println(dim.Render(fmt.Sprintf("  %d file(s) held open by system processes", n)))
	}
	if n := len(res.warnings); n > 0 && !debug {
		fmt.Println(dim.Render(fmt.Sprintf("  %d warning(s), rerun with --debug to see them", n)))
	}
}

func sortedKeys(m map[string]*tally) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return m[keys[i]].size > m[keys[j]].size
	})
	return keys
}
