package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/fhofer/invoice-assistant/internal/common"
	"github.com/fhofer/invoice-assistant/internal/invoice"
	"github.com/fhofer/invoice-assistant/internal/ledger"
	"github.com/fhofer/invoice-assistant/internal/pdftext"
	"github.com/fhofer/invoice-assistant/internal/transport"
	"github.com/fhofer/invoice-assistant/internal/workflow"
)

func main() {
	_ = godotenv.Load()
	cfg := common.LoadConfig()

	// stdout is the operator surface; logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: invoice-assistant <invoice.pdf>")
		os.Exit(1)
	}
	path := os.Args[1]
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "invoice file not found: %s\n", path)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		logger.Warn("incomplete configuration; upload and posting will fail until set", "error", err)
	}

	ctx := context.Background()

	res, err := pdftext.NewExtractor(logger).Extract(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", path, err)
		os.Exit(1)
	}

	rec, err := invoice.Assemble(path, res.Text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot assemble invoice record: %v\n", err)
		os.Exit(1)
	}

	logger.Info("invoice loaded",
		"path", path,
		"pages", res.Pages,
		"invoice_number", rec.InvoiceNumber,
		"date", rec.Date.Format("2006-01-02"),
		"amount", rec.Amount,
	)

	uploader := transport.NewSFTPUploader(transport.Config{
		Host:        cfg.Remote.Host,
		Port:        cfg.Remote.Port,
		Username:    cfg.Remote.Username,
		Password:    cfg.Remote.Password,
		KnownHosts:  cfg.Remote.KnownHosts,
		DialTimeout: cfg.Remote.DialTimeout,
	}, logger)
	poster := ledger.NewClient(cfg.Ledger.URL, cfg.Ledger.Timeout, logger)

	sess := workflow.New(rec, workflow.ConsolePrompter{}, uploader, poster,
		cfg.Remote.DirBooked, cfg.Remote.DirClosed, logger)
	if err := sess.Run(ctx); err != nil {
		logger.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}
