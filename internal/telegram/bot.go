package telegram

import (
	"fmt"
	"strings"

	"go-jobboard/internal/render"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

var markdownReplacer = strings.NewReplacer(
	"\\", "\\\\",
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
	")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
	"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
	"}", "\\}", ".", "\\.", "!", "\\!",
)

func escapeMarkdown(text string) string {
	return markdownReplacer.Replace(text)
}

// maxMessageLen is Telegram's limit for one text message.
const maxMessageLen = 4096

// FormatJob renders a posting as a MarkdownV2 message. Glyphs come from the
// plain text surface so the chat shows the same icons as the other front ends.
func FormatJob(p render.Page, applyURL string) string {
	var b strings.Builder
	//build message chunks
	fmt.Fprintf(&b, "💼 *%s*\n", escapeMarkdown(p.Title))
	if p.Company != "" {
		fmt.Fprintf(&b, "🏢 %s\n", escapeMarkdown(p.Company))
	}
	if p.Salary != "" {
		fmt.Fprintf(&b, "💰 %s\n", escapeMarkdown(p.Salary))
	}
	if p.Location != "" {
		fmt.Fprintf(&b, "📍 %s\n", escapeMarkdown(p.Location))
	}

	v := p.View
	if v.Intro != "" || len(v.Points) > 0 {
		b.WriteString("\n")
	}
	if v.Intro != "" {
		fmt.Fprintf(&b, "%s\n", escapeMarkdown(v.Intro))
	}
	for _, t := range v.Points {
		fmt.Fprintf(&b, "%s %s\n", render.Text.PointGlyph, escapeMarkdown(t))
	}
	if len(v.Requirements) > 0 {
		fmt.Fprintf(&b, "\n*%s*\n", escapeMarkdown(render.Labels().Requirements))
		for _, t := range v.Requirements {
			fmt.Fprintf(&b, "%s %s\n", render.Text.RequirementGlyph, escapeMarkdown(t))
		}
	}
	if len(v.Benefits) > 0 {
		fmt.Fprintf(&b, "\n*%s*\n", escapeMarkdown(render.Labels().Benefits))
		for _, c := range v.Benefits {
			fmt.Fprintf(&b, "%s %s\n", render.Text.Glyph(c.Icon), escapeMarkdown(c.Text))
		}
	}
	if applyURL != "" {
		fmt.Fprintf(&b, "\n🔗 [Xem chi tiết](%s)\n", escapeLink(applyURL))
	}

	msg := b.String()
	if r := []rune(msg); len(r) > maxMessageLen {
		// cut on a line boundary so no escape sequence is split
		cut := string(r[:maxMessageLen-2])
		if i := strings.LastIndex(cut, "\n"); i > 0 {
			cut = cut[:i+1]
		}
		msg = cut + "…"
	}
	return msg
}

// escapeLink escapes the characters MarkdownV2 reserves inside a link target.
func escapeLink(url string) string {
	return strings.NewReplacer("\\", "\\\\", ")", "\\)").Replace(url)
}

func (b *Bot) SendJob(p render.Page, applyURL string) error {
	msg := tgbotapi.NewMessage(b.chatID, FormatJob(p, applyURL))
	msg.ParseMode = "MarkdownV2"
	msg.DisableWebPagePreview = true

	//create inline keyboard
	if applyURL != "" {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("📝 Ứng tuyển", applyURL),
			),
		)
	}

	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendError(err error) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("❌ Error: %v", err))
	_, sendErr := b.api.Send(msg)
	return sendErr
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
