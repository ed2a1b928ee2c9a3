package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"contractbot/internal/conversation"
)

// Bot bridges Telegram updates to the conversation machine and delivers
// generated documents back as file attachments.
type Bot struct {
	api      *tgbotapi.BotAPI
	machine  *conversation.Machine
	logger   *zap.Logger
	dispatch *dispatcher
}

func New(token string, machine *conversation.Machine, registry conversation.Registry, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating bot api: %w", err)
	}

	logger.Info("authorized", zap.String("account", api.Self.UserName))

	b := &Bot{
		api:      api,
		machine:  machine,
		logger:   logger,
		dispatch: newDispatcher(),
	}
	if err := b.registerCommands(registry); err != nil {
		return nil, fmt.Errorf("registering bot commands: %w", err)
	}
	return b, nil
}

func (b *Bot) registerCommands(registry conversation.Registry) error {
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Меню. Сбросить состояние"},
	}
	for _, key := range registry.Keys() {
		profile, err := registry.Lookup(key)
		if err != nil {
			return err
		}
		commands = append(commands, tgbotapi.BotCommand{
			Command:     "company_" + string(key),
			Description: profile.Name,
		})
	}
	commands = append(commands, tgbotapi.BotCommand{Command: "retry", Description: "Еще раз"})

	_, err := b.api.Request(tgbotapi.NewSetMyCommands(commands...))
	return err
}

// Run polls for updates until ctx is cancelled. Each chat gets its own
// worker, so messages within one conversation are handled strictly in
// arrival order while a slow render in one chat never blocks the others.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			msg := update.Message
			b.dispatch.enqueue(ctx, msg.Chat.ID, func() {
				b.handleMessage(ctx, msg)
			})
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	result, err := b.machine.Handle(ctx, msg.Chat.ID, msg.Text)
	if err != nil {
		b.logger.Error("handling message failed",
			zap.Int64("chatId", msg.Chat.ID),
			zap.Error(err))
		b.send(msg.Chat.ID, "Произошла ошибка. Попробуйте еще раз /start")
		return
	}

	if result.Document != nil {
		doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{
			Name:  result.Document.Name + ".pdf",
			Bytes: result.Document.Data,
		})
		if _, err := b.api.Send(doc); err != nil {
			b.logger.Error("sending document failed",
				zap.Int64("chatId", msg.Chat.ID),
				zap.String("document", result.Document.Name),
				zap.Error(err))
			b.send(msg.Chat.ID, "Не удалось отправить файл. Попробуйте еще раз /retry")
			return
		}
	}

	if result.Reply != "" {
		b.send(msg.Chat.ID, result.Reply)
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("sending message failed",
			zap.Int64("chatId", chatID),
			zap.Error(err))
	}
}
