package botapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/provhatrahman/Ahwaaz/internal/config"
	tginfra "github.com/provhatrahman/Ahwaaz/internal/infra/telegram"
	"github.com/provhatrahman/Ahwaaz/internal/jobs/cleanup"
	pgrepo "github.com/provhatrahman/Ahwaaz/internal/repo/postgres"
	reportssvc "github.com/provhatrahman/Ahwaaz/internal/services/reports"
)

const queueEmptyInstruction = "Moderation queue is empty."

// App is the moderator bot process. It alerts the moderator chat about new
// reports and feedback, lets moderators resolve reports from inline
// buttons, and purges terminal records on a timer.
type App struct {
	cfg           config.Config
	logger        *zap.Logger
	postgres      *pgxpool.Pool
	bot           *tginfra.Bot
	reportRepo    *pgrepo.ReportRepo
	feedbackRepo  *pgrepo.FeedbackRepo
	reportService *reportssvc.Service
	cleanupJob    *cleanup.Job

	seenMu           sync.Mutex
	lastReportSeen   time.Time
	lastFeedbackSeen time.Time
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	pool, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("init postgres for bot app: %w", err)
	}

	reportRepo := pgrepo.NewReportRepo(pool)
	feedbackRepo := pgrepo.NewFeedbackRepo(pool)
	artistRepo := pgrepo.NewArtistRepo(pool)
	// The bot only changes statuses, so no rate guard is attached.
	reportService := reportssvc.NewService(reportRepo, artistRepo, nil)
	cleanupJob := cleanup.New(reportRepo, feedbackRepo, cfg.Bot.ReportRetention, logger)

	var bot *tginfra.Bot
	if strings.TrimSpace(cfg.Bot.Token) != "" {
		bot, err = tginfra.NewBot(cfg.Bot.Token)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("init telegram bot: %w", err)
		}
	} else {
		logger.Warn("BOT_TOKEN is empty, moderation alerts disabled")
	}

	now := time.Now().UTC()
	return &App{
		cfg:              cfg,
		logger:           logger,
		postgres:         pool,
		bot:              bot,
		reportRepo:       reportRepo,
		feedbackRepo:     feedbackRepo,
		reportService:    reportService,
		cleanupJob:       cleanupJob,
		lastReportSeen:   now,
		lastFeedbackSeen: now,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("bot app started")

	errCh := make(chan error, 3)
	go func() {
		errCh <- a.runCleanupLoop(ctx)
	}()

	if a.bot != nil {
		go func() {
			errCh <- a.runNotifyLoop(ctx)
		}()
		go func() {
			errCh <- a.bot.Listen(ctx, tginfra.Handlers{
				OnCommand:  a.handleCommand,
				OnCallback: a.handleCallback,
			})
		}()
	}

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("bot app stopped")
			return nil
		case err := <-errCh:
			if err == nil || errors.Is(err, context.Canceled) {
				continue
			}
			return err
		}
	}
}

func (a *App) runCleanupLoop(ctx context.Context) error {
	if a.cleanupJob == nil {
		return nil
	}

	interval := a.cfg.Bot.CleanupInterval
	if interval <= 0 {
		interval = 6 * time.Hour
	}

	if err := a.cleanupJob.Run(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := a.cleanupJob.Run(ctx); err != nil {
				return err
			}
		}
	}
}

func (a *App) runNotifyLoop(ctx context.Context) error {
	if a.cfg.Bot.ModeratorChatID == 0 {
		a.logger.Warn("BOT_MODERATOR_CHAT_ID is empty, moderation alerts disabled")
		return nil
	}

	interval := a.cfg.Bot.PollInterval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := a.notifyNewReports(ctx); err != nil {
				a.logger.Warn("report alerting failed", zap.Error(err))
			}
			if err := a.notifyNewFeedback(ctx); err != nil {
				a.logger.Warn("feedback alerting failed", zap.Error(err))
			}
		}
	}
}

func (a *App) notifyNewReports(ctx context.Context) error {
	a.seenMu.Lock()
	since := a.lastReportSeen
	a.seenMu.Unlock()

	reports, err := a.reportRepo.ListPendingSince(ctx, since)
	if err != nil {
		return err
	}

	for _, report := range reports {
		text := strings.Join([]string{
			"New report " + report.ID,
			"Artist: " + report.ArtistID,
			"Reason: " + string(report.Reason),
			"Description: " + report.Description,
		}, "\n")
		if err := a.bot.SendReportAlert(ctx, a.cfg.Bot.ModeratorChatID, text, report.ID); err != nil {
			return err
		}

		a.seenMu.Lock()
		if report.CreatedAt.After(a.lastReportSeen) {
			a.lastReportSeen = report.CreatedAt
		}
		a.seenMu.Unlock()
	}

	return nil
}

func (a *App) notifyNewFeedback(ctx context.Context) error {
	a.seenMu.Lock()
	since := a.lastFeedbackSeen
	a.seenMu.Unlock()

	items, err := a.feedbackRepo.ListNewSince(ctx, since)
	if err != nil {
		return err
	}

	for _, item := range items {
		text := strings.Join([]string{
			"New feedback " + item.ID,
			"Type: " + string(item.Type),
			"Title: " + item.Title,
			"Description: " + item.Description,
		}, "\n")
		if err := a.bot.SendText(ctx, a.cfg.Bot.ModeratorChatID, text); err != nil {
			return err
		}

		a.seenMu.Lock()
		if item.CreatedAt.After(a.lastFeedbackSeen) {
			a.lastFeedbackSeen = item.CreatedAt
		}
		a.seenMu.Unlock()
	}

	return nil
}

func (a *App) handleCommand(ctx context.Context, update tginfra.CommandUpdate) error {
	if a.bot == nil {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(update.Command)) {
	case "queue":
		return a.sendQueue(ctx, update.ChatID)
	case "resolve":
		return a.setReportStatus(ctx, update.ChatID, update.Args, "resolved")
	case "dismiss":
		return a.setReportStatus(ctx, update.ChatID, update.Args, "dismissed")
	default:
		return nil
	}
}

func (a *App) handleCallback(ctx context.Context, update tginfra.CallbackUpdate) error {
	if a.bot == nil {
		return nil
	}

	parts := strings.Split(strings.TrimSpace(update.Data), ":")
	if len(parts) != 3 || parts[0] != "report" {
		return a.bot.AnswerCallback(ctx, update.CallbackID, "Unknown action")
	}

	reportID := strings.TrimSpace(parts[2])
	if reportID == "" {
		return a.bot.AnswerCallback(ctx, update.CallbackID, "Invalid report id")
	}

	switch parts[1] {
	case "resolve":
		if err := a.reportService.SetStatus(ctx, reportID, "resolved"); err != nil {
			return a.bot.AnswerCallback(ctx, update.CallbackID, "Resolve failed")
		}
		return a.bot.AnswerCallback(ctx, update.CallbackID, "Resolved")
	case "dismiss":
		if err := a.reportService.SetStatus(ctx, reportID, "dismissed"); err != nil {
			return a.bot.AnswerCallback(ctx, update.CallbackID, "Dismiss failed")
		}
		return a.bot.AnswerCallback(ctx, update.CallbackID, "Dismissed")
	default:
		return a.bot.AnswerCallback(ctx, update.CallbackID, "Unknown action")
	}
}

func (a *App) setReportStatus(ctx context.Context, chatID int64, args, status string) error {
	reportID := strings.TrimSpace(args)
	if reportID == "" {
		return a.bot.SendText(ctx, chatID, "Usage: /resolve <report id> or /dismiss <report id>")
	}

	if err := a.reportService.SetStatus(ctx, reportID, status); err != nil {
		if errors.Is(err, reportssvc.ErrNotFound) {
			return a.bot.SendText(ctx, chatID, "Report not found: "+reportID)
		}
		return a.bot.SendText(ctx, chatID, "Failed to update report "+reportID)
	}

	return a.bot.SendText(ctx, chatID, "Report "+reportID+" marked "+status+".")
}

func (a *App) sendQueue(ctx context.Context, chatID int64) error {
	reports, err := a.reportService.List(ctx, "pending", 5)
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		return a.bot.SendText(ctx, chatID, queueEmptyInstruction)
	}

	for _, report := range reports {
		text := strings.Join([]string{
			"Pending report " + report.ID,
			"Artist: " + report.ArtistID,
			"Reason: " + string(report.Reason),
			"Description: " + report.Description,
			"Created: " + report.CreatedAt.UTC().Format(time.RFC3339),
		}, "\n")
		if err := a.bot.SendReportAlert(ctx, chatID, text, report.ID); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) Close() {
	if a.postgres != nil {
		a.postgres.Close()
	}
}
