// Command extract reads an exam PDF, splits it into questions and saves them
// to the configured question store.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"exam-variation-be/internal/bootstrap"
	"exam-variation-be/internal/config"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	pdfPath := flag.String("pdf", cfg.Extract.PDFPath, "path to the exam PDF")
	outFile := flag.String("out", cfg.Store.QuestionsFile, "questions JSON file (json store only)")
	textFile := flag.String("text", cfg.Extract.ExtractedTextFile, "raw text dump path; empty disables it")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: extract [-pdf exam.pdf] [-out questions.json] [-text extracted_text.txt]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg.Store.QuestionsFile = *outFile
	cfg.Extract.ExtractedTextFile = *textFile
	// keep the terminal for the summary below
	cfg.App.LogFilePath = ""

	if err := run(cfg, *pdfPath); err != nil {
		fmt.Fprintf(os.Stderr, "extract: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, pdfPath string) error {
	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := container.ExtractionService.Run(ctx, pdfPath)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Printf("%s Extracted %d characters from %s\n", green("✓"), res.Characters, res.PDFPath)
	if res.TextFile != "" {
		fmt.Printf("  raw text saved to %s\n", res.TextFile)
	}
	fmt.Printf("%s Extracted %d questions\n", green("✓"), res.QuestionCount)
	if cfg.Store.Driver == config.StoreDriverJSON {
		fmt.Printf("  questions saved to %s\n", cfg.Store.QuestionsFile)
	}

	if len(res.Preview) > 0 {
		fmt.Println()
		fmt.Println(cyan("Preview:"))
		for _, q := range res.Preview {
			fmt.Printf("%s %s\n\n", cyan(fmt.Sprintf("Q%d:", q.Id)), q.Text)
		}
	}
	return nil
}
