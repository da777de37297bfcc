package bot

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/verba-en/backend/internal/book"
)

// Bot is the Telegram entry point to the Mini App: /start opens the web app,
// /info reports the loaded book.
type Bot struct {
	api       *tgbotapi.BotAPI
	webAppURL string
	books     *book.Service
}

func New(token, webAppURL string, books *book.Service) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &Bot{api: api, webAppURL: webAppURL, books: books}, nil
}

// Run polls for updates until the update channel closes. Meant to be run in
// its own goroutine.
func (b *Bot) Run() {
	log.Printf("[bot] started as @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for update := range b.api.GetUpdatesChan(u) {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}

		chatID := update.Message.Chat.ID
		switch update.Message.Command() {
		case "start":
			b.handleStart(chatID)
		case "help":
			b.handleHelp(chatID)
		case "info":
			b.handleInfo(chatID)
		}
	}
}

func (b *Bot) handleStart(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonWebApp(
				"📚 Open Book Reader",
				tgbotapi.WebAppInfo{URL: b.webAppURL},
			),
		),
	)

	msg := tgbotapi.NewMessage(chatID,
		"👋 Welcome to Verba-EN!\n\n"+
			"Your personal English learning companion.\n\n"+
			"Click the button below to start reading:")
	msg.ReplyMarkup = keyboard
	b.send(msg)
}

func (b *Bot) handleHelp(chatID int64) {
	msg := tgbotapi.NewMessage(chatID,
		"📖 *Verba-EN Help*\n\n"+
			"*Commands:*\n"+
			"/start - Open the book reader\n"+
			"/help - Show this help message\n"+
			"/info - Show current book information\n\n"+
			"*Features:*\n"+
			"• Read books page by page\n"+
			"• Complete the 20 quiz variants\n"+
			"• Earn badges as you progress\n\n"+
			"All your progress is saved automatically!")
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.send(msg)
}

func (b *Bot) handleInfo(chatID int64) {
	info := b.books.Info()

	var text string
	if info.HasContent {
		text = fmt.Sprintf("📚 *Current Book*\n\nTitle: %s\nTotal Pages: %d\n\nClick /start to begin reading!",
			info.Title, info.TotalPages)
	} else {
		text = "📭 No book loaded yet.\n\nPlease upload a PDF file to the books directory."
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.send(msg)
}

func (b *Bot) send(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("[bot] send failed: %v", err)
	}
}
