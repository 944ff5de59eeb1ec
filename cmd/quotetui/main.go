package main

import (
	"context"
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"decorquote/config"
	sessionRepo "decorquote/database/repository/session"
	"decorquote/services/booking"
	"decorquote/services/inquiry"
	"decorquote/services/notification"
	"decorquote/tui"
)

func main() {
	catalogPath := flag.String("catalog", "", "yaml/json file with catalog.selection and catalog.addons (defaults to config.yaml)")
	flag.Parse()

	ctx := context.Background()
	config.LoadConfig()
	cfg := config.AppConfig

	catalog := cfg.Catalog
	if *catalogPath != "" {
		c, err := config.LoadCatalogFile(*catalogPath)
		if err != nil {
			log.Fatalf("catalog: %v", err)
		}
		catalog = c
	}
	if catalog.Selection == nil {
		log.Fatal("catalog: no selection configured (catalog.selection)")
	}

	// The terminal would be garbled by log output, so the service logs nowhere.
	logger := zap.NewNop()

	repo := sessionRepo.NewInMemorySessionRepo(cfg.SessionTTL)
	notices, err := notification.NewSessionNoticeService(repo, cfg.NoticeTTL)
	if err != nil {
		log.Fatalf("notifications: %v", err)
	}
	sender := inquiry.NewClient(cfg.InquiryAPIURL, cfg.InquiryAPIKey, cfg.InquiryTimeout)

	svc := booking.NewDefaultBookingSessionService(repo, sender, notices, logger)
	svc.DefaultAddons = catalog.Addons
	svc.SubmitLockTTL = cfg.SubmitLockTTL
	svc.SubmitStaleAfter = cfg.SubmitStaleAfter

	app := tui.New(ctx, svc, *catalog.Selection, nil)
	if _, err := tea.NewProgram(app).Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}
