package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go-jobboard/internal/content"
	"go-jobboard/internal/dedup"
	"go-jobboard/internal/icon"
	"go-jobboard/internal/pdf"
	"go-jobboard/internal/render"
	"go-jobboard/internal/services"
	"go-jobboard/internal/telegram"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Count structured, legacy and empty content per field",
	Args:  cobra.NoArgs,
	RunE:  runAudit,
}

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Rewrite legacy descriptions and requirements as structured JSON",
	Long: `Parses every legacy description and requirements value and stores it
again in the structured format. Legacy benefits are left alone: their text
cannot be recovered as benefit items.`,
	Args: cobra.NoArgs,
	RunE: runBackfill,
}

var renderCmd = &cobra.Command{
	Use:   "render [job-id]",
	Short: "Render one posting on a surface",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var announceCmd = &cobra.Command{
	Use:   "announce",
	Short: "Send published postings that were never announced to Telegram",
	Args:  cobra.NoArgs,
	RunE:  runAnnounce,
}

var iconCmd = &cobra.Command{
	Use:   "icon [key] [text]",
	Short: "Show how a benefit icon key resolves on every surface",
	Example: `  contentctl icon salary
  contentctl icon star "Du lịch hằng năm"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runIcon,
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	repo, svc, err := connect(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	report, err := svc.Audit(ctx)
	if err != nil {
		return err
	}
	printAudit(cmd.OutOrStdout(), report)
	return nil
}

func printAudit(w io.Writer, r services.AuditReport) {
	fmt.Fprintf(w, "📊 %d jobs\n", r.Jobs)
	fmt.Fprintf(w, "%-14s %10s %8s %7s\n", "field", "structured", "legacy", "empty")
	for _, f := range []content.Field{content.FieldDescription, content.FieldRequirements, content.FieldBenefits} {
		c := r.Fields[f.String()]
		fmt.Fprintf(w, "%-14s %10d %8d %7d\n", f, c.Structured, c.Legacy, c.Empty)
	}
}

func runBackfill(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	repo, svc, err := connect(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	n, err := svc.Backfill(ctx, dryRun)
	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "🔍 %d jobs would be rewritten\n", n)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %d jobs rewritten\n", n)
	}
	return err
}

func runRender(cmd *cobra.Command, args []string) error {
	surface, _ := cmd.Flags().GetString("surface")
	out, _ := cmd.Flags().GetString("out")
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	repo, svc, err := connect(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	page, err := svc.Page(ctx, args[0])
	if err != nil {
		return err
	}

	if surface == "pdf" {
		if out == "" {
			out = fmt.Sprintf("job-%s.pdf", page.JobID)
		}
		data, err := pdf.NewGenerator(logger).Generate(ctx, page)
		if err != nil {
			return err
		}
		if err := pdf.SaveToFile(data, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "📄 %s\n", out)
		return nil
	}

	var buf bytes.Buffer
	if err := renderPage(&buf, page, surface); err != nil {
		return err
	}
	if out != "" {
		return os.WriteFile(out, buf.Bytes(), 0644)
	}
	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

// renderPage writes page in the format of the named surface.
func renderPage(w io.Writer, page render.Page, surface string) error {
	s, ok := render.SurfaceByName(surface)
	if !ok {
		return fmt.Errorf("unknown surface %q", surface)
	}
	switch s.Name {
	case render.Text.Name:
		_, err := io.WriteString(w, render.PlainText(page))
		return err
	case render.Mobile.Name:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(render.ForMobile(page))
	default:
		return render.HTML(w, s, page)
	}
}

func runAnnounce(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	repo, _, err := connect(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()
	if err := cfg.RequireTelegram(); err != nil {
		return err
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		return fmt.Errorf("telegram login failed: %w", err)
	}

	svc := services.NewAnnounceService(repo, bot, dedup.NewJobCache(cfg.CachePath, logger), cfg.PublicBaseURL, logger)
	n, err := svc.Announce(ctx)
	if err != nil {
		_ = bot.SendError(err)
		return err
	}
	if n > 0 {
		_ = bot.SendStatus(fmt.Sprintf("%d new job(s) announced", n))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "📣 %d jobs announced\n", n)
	return nil
}

func runIcon(cmd *cobra.Command, args []string) error {
	key := args[0]
	text := ""
	if len(args) > 1 {
		text = args[1]
	}
	id := icon.Resolve(key, text)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%q -> %s\n", key, id)
	for _, s := range []render.Surface{render.Admin, render.Web, render.Mobile, render.Text} {
		fmt.Fprintf(w, "  %-7s %s\n", s.Name, s.Glyph(id))
	}
	if strings.EqualFold(strings.TrimSpace(key), icon.Placeholder) && text == "" {
		fmt.Fprintln(w, "  (placeholder key: pass the benefit text to resolve from it)")
	}
	return nil
}
