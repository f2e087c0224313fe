package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
)

// TelegramNotifier posts booking activity digests to the organization's
// admin channel.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, adminChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, adminChatID: adminChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingsCreated(ctx context.Context, bookings []*domain.Booking) {
	if len(bookings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString("*New booking request*\n\n")
	fmt.Fprintf(&sb, "Title: %s\n", bookings[0].Title)
	if bookings[0].Venue != nil {
		fmt.Fprintf(&sb, "Venue: %s\n", bookings[0].Venue.Name)
	}
	if bookings[0].Booker != nil {
		fmt.Fprintf(&sb, "Booker: %s\n", bookings[0].Booker.Name)
	}
	sb.WriteString("Slots (UTC):\n")
	for _, b := range bookings {
		fmt.Fprintf(&sb, "  %s - %s\n",
			b.StartDateTime.Format("02.01.2006 15:04"),
			b.EndDateTime.Format("02.01.2006 15:04"),
		)
	}

	n.send(ctx, sb.String())
}

func (n *TelegramNotifier) NotifyBookingsUpdated(ctx context.Context, bookings []*domain.Booking, previousStatuses map[int64]domain.BookingStatus) {
	if len(bookings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString("*Booking status changes*\n\n")
	for _, b := range bookings {
		prev := previousStatuses[b.ID]
		fmt.Fprintf(&sb, "#%d %s: %s -> %s\n", b.ID, b.Title, prev, b.Status)
	}

	n.send(ctx, sb.String())
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.adminChatID == 0 {
		n.logger.Debug("notification skipped (no admin chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.adminChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.adminChatID),
			logger.String("error", err.Error()),
		)
	}
}
