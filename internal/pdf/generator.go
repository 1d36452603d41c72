package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-jobboard/internal/render"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Generator prints the public web page of a job posting to PDF.
type Generator struct {
	logger *zap.Logger
}

func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// HTML is the document Generate prints.
func HTML(page render.Page) (string, error) {
	var buf bytes.Buffer
	if err := render.HTML(&buf, render.Web, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// timeoutMillis converts the context deadline into playwright's millisecond
// timeout.
func timeoutMillis(ctx context.Context) float64 {
	if deadline, ok := ctx.Deadline(); ok {
		if d := time.Until(deadline); d > 0 {
			return float64(d.Milliseconds())
		}
	}
	return float64(defaultTimeout.Milliseconds())
}

// Generate renders page with the web template and uses Playwright to print
// it as an A4 PDF.
func (g *Generator) Generate(ctx context.Context, page render.Page) ([]byte, error) {
	htmlContent, err := HTML(page)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("could not launch chromium browser: %w", err)
	}
	defer browser.Close()

	p, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create new page: %w", err)
	}
	defer p.Close()

	// Font Awesome is loaded from a CDN, so wait for the network to settle
	if err := p.SetContent(htmlContent, playwright.PageSetContentOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(timeoutMillis(ctx)),
	}); err != nil {
		return nil, fmt.Errorf("could not set page content: %w", err)
	}

	pdfBytes, err := p.PDF(playwright.PagePdfOptions{
		Format:          playwright.String("A4"),
		PrintBackground: playwright.Bool(true),
		Margin: &playwright.Margin{
			Top:    playwright.String("12mm"),
			Bottom: playwright.String("12mm"),
			Left:   playwright.String("10mm"),
			Right:  playwright.String("10mm"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not generate PDF: %w", err)
	}

	g.logger.Debug("job pdf generated",
		zap.String("job", page.JobID),
		zap.Int("bytes", len(pdfBytes)),
		zap.Duration("took", time.Since(start)))
	return pdfBytes, nil
}

// SaveToFile writes a generated PDF to disk, creating parent directories.
func SaveToFile(pdfBytes []byte, outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory: %w", err)
	}

	return os.WriteFile(outputPath, pdfBytes, 0644)
}
