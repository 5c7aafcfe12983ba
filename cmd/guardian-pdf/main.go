package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/aarushdubey/Guardian-PDF/internal/chunker"
	"github.com/aarushdubey/Guardian-PDF/internal/config"
	"github.com/aarushdubey/Guardian-PDF/internal/dedup"
	"github.com/aarushdubey/Guardian-PDF/internal/extract"
	"github.com/aarushdubey/Guardian-PDF/internal/service"
	"github.com/aarushdubey/Guardian-PDF/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var noTUI bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/guardian-pdf/config.yaml if not provided)")
	flag.BoolVar(&noTUI, "no-tui", false, "Print unique chunks to stdout instead of opening the browser")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: guardian-pdf [--config=config.yaml] [--no-tui] file1.pdf [file2.pdf notes.txt ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Assemble components
	ch, err := chunker.NewWordChunker(cfg.Chunker.ChunkSize, cfg.Chunker.OverlapSize)
	if err != nil {
		log.Fatalf("invalid chunker config: %v", err)
	}
	dd := dedup.New(cfg.Dedup.SimilarityThreshold, cfg.Dedup.NGramSize)
	ex := extract.NewExtractor()

	pipeline := service.NewPipeline(ex, ch, dd, cfg.DedupEnabled())
	report, err := pipeline.Process(inputs)
	if err != nil {
		log.Fatalf("processing failed: %v", err)
	}

	if noTUI {
		for _, chunk := range report.Chunks {
			fmt.Println(chunk)
		}
		return
	}

	m := tui.New(report)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
