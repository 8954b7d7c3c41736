package tgbot

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"volunteerhub/bot/botstorage"
	botmodel "volunteerhub/bot/model"
	"volunteerhub/internal/backend"
	"volunteerhub/internal/config"
)

// telegramSender is the part of the API client both the update loop and
// the notifier need. *tgbotapi.BotAPI satisfies it.
type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	bot    *tgbotapi.BotAPI
	sender telegramSender

	botStorage botstorage.BotStorage
	client     *backend.Client
	log        *logrus.Entry

	// cancel func to stop the bot
	cancel func()

	subs subscriptions

	commands *Commands

	pollInterval time.Duration
}

var ErrBadRequest = errors.New("unknown command, try /help")

const defaultPollInterval = time.Minute

func New(client *backend.Client, bs botstorage.BotStorage, cfg config.Config, log *logrus.Logger) (Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramAPIToken)
	if err != nil {
		return Bot{}, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}

	bot.Debug = cfg.Server.Debug
	_, err = bot.GetMe()
	if err != nil {
		return Bot{}, err
	}
	subs := newSubs()
	users, err := bs.ListSubscribed()
	if err != nil {
		return Bot{}, err
	}
	for i := range users {
		subs.Add(botmodel.NewNotification, users[i].ID)
	}

	pollInterval := defaultPollInterval
	if cfg.TgBot.PollInterval != "" {
		pollInterval, err = time.ParseDuration(cfg.TgBot.PollInterval)
		if err != nil {
			return Bot{}, fmt.Errorf("poll_interval: %w", err)
		}
	}

	b := Bot{
		bot:          bot,
		sender:       bot,
		botStorage:   bs,
		client:       client,
		log:          log.WithField("name", "tg_bot"),
		subs:         subs,
		pollInterval: pollInterval,
	}

	b.commands = NewCommands(
		client,
		bs,
		func(id int64) {
			b.subs.Add(botmodel.NewNotification, id)
		},
		func(id int64) {
			b.subs.Remove(botmodel.NewNotification, id)
		},
	)

	return b, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	go b.pollNotifications(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(update)
		}
	}
}

func (b *Bot) handleMessage(update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	tgUser := update.SentFrom()
	if tgUser == nil {
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"user_id": tgUser.ID,
		"text":    update.Message.Text,
	})
	user, err := b.botStorage.GetUser(tgUser.ID)
	if err != nil {
		user, err = b.botStorage.NewUser(botmodel.User{
			ID:        tgUser.ID,
			FirstName: tgUser.FirstName,
			Username:  tgUser.UserName,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
		if err != nil {
			log.WithError(err).Error("unable to get user from db")
			return
		}
	}

	err = b.botStorage.Log(user, update.Message.Text)
	if err != nil {
		log.WithError(err).Error("can't log to db")
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")

	text, err := b.commands.RunCommand(user, update.Message.Command(), update.Message.CommandArguments())
	if err != nil {
		text = err.Error()
	}
	msg.Text = text
	if _, err := b.sender.Send(msg); err != nil {
		log.WithError(err).Error("send error")
		return
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}
