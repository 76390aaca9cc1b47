package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api *tgbotapi.BotAPI
}

type CommandUpdate struct {
	ChatID   int64
	UserID   int64
	Username string
	Command  string
	Args     string
}

type TextUpdate struct {
	ChatID   int64
	UserID   int64
	Username string
	Text     string
}

type CallbackUpdate struct {
	CallbackID string
	ChatID     int64
	UserID     int64
	Username   string
	Data       string
}

type Handlers struct {
	OnCommand  func(context.Context, CommandUpdate) error
	OnText     func(context.Context, TextUpdate) error
	OnCallback func(context.Context, CallbackUpdate) error
}

func NewBot(token string) (*Bot, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("telegram bot token is empty")
	}

	api, err := tgbotapi.NewBotAPI(strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("create telegram bot api: %w", err)
	}

	return &Bot{api: api}, nil
}

func (b *Bot) Listen(ctx context.Context, handlers Handlers) error {
	if b == nil || b.api == nil {
		return fmt.Errorf("telegram bot is not initialized")
	}

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := b.api.GetUpdatesChan(updateCfg)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			if update.Message != nil && update.Message.From != nil {
				if update.Message.IsCommand() && handlers.OnCommand != nil {
					err := handlers.OnCommand(ctx, CommandUpdate{
						ChatID:   update.Message.Chat.ID,
						UserID:   update.Message.From.ID,
						Username: update.Message.From.UserName,
						Command:  update.Message.Command(),
						Args:     update.Message.CommandArguments(),
					})
					if err != nil {
						return err
					}
					continue
				}

				text := strings.TrimSpace(update.Message.Text)
				if text != "" && handlers.OnText != nil {
					err := handlers.OnText(ctx, TextUpdate{
						ChatID:   update.Message.Chat.ID,
						UserID:   update.Message.From.ID,
						Username: update.Message.From.UserName,
						Text:     text,
					})
					if err != nil {
						return err
					}
				}
			}

			if update.CallbackQuery != nil && update.CallbackQuery.From != nil && handlers.OnCallback != nil {
				chatID := int64(0)
				if update.CallbackQuery.Message != nil {
					chatID = update.CallbackQuery.Message.Chat.ID
				}
				err := handlers.OnCallback(ctx, CallbackUpdate{
					CallbackID: update.CallbackQuery.ID,
					ChatID:     chatID,
					UserID:     update.CallbackQuery.From.ID,
					Username:   update.CallbackQuery.From.UserName,
					Data:       update.CallbackQuery.Data,
				})
				if err != nil {
					return err
				}
			}
		}
	}
}

func (b *Bot) SendText(ctx context.Context, chatID int64, text string) error {
	if b == nil || b.api == nil {
		return fmt.Errorf("telegram bot is not initialized")
	}
	if chatID == 0 {
		return fmt.Errorf("chat id is required")
	}

	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	_ = ctx
	return nil
}

// SendReportAlert posts a report summary with inline resolve/dismiss buttons.
func (b *Bot) SendReportAlert(ctx context.Context, chatID int64, text string, reportID string) error {
	if b == nil || b.api == nil {
		return fmt.Errorf("telegram bot is not initialized")
	}

	resolveData := "report:resolve:" + reportID
	dismissData := "report:dismiss:" + reportID

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Resolve", resolveData),
			tgbotapi.NewInlineKeyboardButtonData("Dismiss", dismissData),
		),
	)

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send report alert message: %w", err)
	}

	_ = ctx
	return nil
}

func (b *Bot) AnswerCallback(ctx context.Context, callbackID, text string) error {
	if b == nil || b.api == nil {
		return fmt.Errorf("telegram bot is not initialized")
	}
	if strings.TrimSpace(callbackID) == "" {
		return nil
	}

	cfg := tgbotapi.NewCallback(callbackID, text)
	if _, err := b.api.Request(cfg); err != nil {
		return fmt.Errorf("answer callback query: %w", err)
	}

	_ = ctx
	return nil
}
