package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"sweeper/internal/auditlog"
	"sweeper/internal/classify"
	"sweeper/internal/plan"
	"sweeper/internal/procs"
	"sweeper/internal/review"
	"sweeper/internal/suggest"
	"sweeper/internal/trash"
	"sweeper/internal/ui"
)

var (
	cleanYes       bool
	cleanDryRun    bool
	cleanForce     bool
	cleanPermanent bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Review suggestions and delete the accepted ones",
	Long: `Scans, shows the cleanup suggestions for interactive review, and
moves the accepted files to the OS trash. Every candidate is re-checked
against the live filesystem and a fresh process snapshot right before
deletion; files that turned critical in the meantime are refused unless
--force is given. Every removal is written to the audit log.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Accept all suggestions without the review screen")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Show the deletion plan without deleting")
	cleanCmd.Flags().BoolVar(&cleanForce, "force", false, "Delete critical files too (dangerous)")
	cleanCmd.Flags().BoolVar(&cleanPermanent, "permanent", false, "Skip the trash and delete outright")
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	res, err := runPipeline(ctx)
	if err != nil {
		return err
	}

	eng := newEngine(res)
	suggestions := eng.Suggest(res.records)
	if len(suggestions) == 0 {
		fmt.Println("  Nothing to clean up — disk looks tidy.")
		return nil
	}

	accepted, err := pickSuggestions(suggestions)
	if err != nil {
		return err
	}
	if len(accepted) == 0 {
		fmt.Println("  Nothing selected.")
		return nil
	}

	var candidates []classify.Classified
	for _, s := range accepted {
		candidates = append(candidates, s.Records...)
	}

	// Fresh snapshot: the one from the scan is stale by now.
	fresh := procs.Capture(ctx, res.prof)
	p, err := plan.Authorize(ctx, candidates, cleanForce, res.prof, fresh)
	if err != nil {
		var sv *plan.SafetyViolation
		if !errors.As(err, &sv) {
			return err
		}
		danger := lipgloss.NewStyle().Foreground(ui.ColorDanger)
		fmt.Println(danger.Render(fmt.Sprintf(
			"  %s %d file(s) are critical and were skipped (use --force to override):",
			ui.IconCross, len(sv.Paths))))
		for _, path := range sv.Paths {
			fmt.Println(danger.Render("    " + path))
		}
		p = sv.Plan
	}

	if len(p.Stale) > 0 {
		fmt.Printf("  %d file(s) vanished since the scan and were dropped.\n", len(p.Stale))
	}
	if len(p.Records) == 0 {
		fmt.Println("  Nothing left to delete.")
		return nil
	}

	permanent := cleanPermanent || res.opts.PermanentDelete
	if !permanent && !trash.Available() {
		// No trash on this platform: permanent delete needs an explicit opt-in.
		if !confirmPermanent(len(p.Records)) {
			fmt.Println("  Aborted.")
			return nil
		}
		permanent = true
	}

	if cleanDryRun {
		printPlan(p, permanent)
		return nil
	}

	log, err := auditlog.New(res.opts.AuditLogPath)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer log.Close()

	results := trash.Execute(ctx, p, permanent, log)
	printResults(results, permanent)
	return nil
}

// pickSuggestions runs the review TUI on a terminal; --yes (or a
// non-interactive stdout with --yes) accepts everything.
func pickSuggestions(suggestions []suggest.Suggestion) ([]suggest.Suggestion, error) {
	if cleanYes {
		return suggestions, nil
	}
	if !interactive() {
		return nil, fmt.Errorf("stdout is not a terminal; pass --yes to accept all suggestions")
	}

	prog := tea.NewProgram(review.New(suggestions), tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(review.Model)
	if !ok || !m.Confirmed() {
		return nil, nil
	}
	return m.Selected(), nil
}

func confirmPermanent(n int) bool {
	if cleanYes && cleanPermanent {
		return true
	}
	if !interactive() {
		return false
	}
	fmt.Printf("  No trash is available here; %d file(s) would be deleted permanently. Continue? [y/N] ", n)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printPlan(p *plan.Plan, permanent bool) {
	action := "trash"
	if permanent {
		action = "delete permanently"
	}
	fmt.Printf("  Would %s %d file(s), %s:\n", action, len(p.Records), ui.FormatSize(p.TotalSize()))
	for _, r := range p.Records {
		marker := "  "
		if r.Blocked {
			marker = ui.IconCross + " "
		}
		fmt.Printf("    %s%10s  %s\n", marker, ui.FormatSize(r.Classified.Record.Size), r.Classified.Record.Path)
	}
}

func printResults(results []trash.Result, permanent bool) {
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("  %s %s: %s\n", ui.IconCross, r.Path, r.ErrText)
		}
	}

	verb := "moved to trash"
	if permanent {
		verb = "deleted"
	}
	ok := len(results) - failed
	fmt.Printf("  %s %d file(s) %s, %s freed", ui.IconCheck, ok, verb, ui.FormatSize(trash.Freed(results)))
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Println()
}
