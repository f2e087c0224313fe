package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
)

// EmailNotifier mails bookers about their own bookings. A notifier built
// with an empty host drops every message.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

func NewEmailNotifier(host string, port int, username, password, from string, logger logger.Logger) *EmailNotifier {
	if host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
		return &EmailNotifier{dialer: nil, from: from, logger: logger}
	}

	return &EmailNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

func (n *EmailNotifier) NotifyBookingsCreated(ctx context.Context, bookings []*domain.Booking) {
	if len(bookings) == 0 || bookings[0].Booker == nil {
		return
	}

	booker := bookings[0].Booker
	subject := fmt.Sprintf("Booking request received: %s", bookings[0].Title)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\nYour booking request has been received and is pending review.\n\n", booker.Name)
	fmt.Fprintf(&sb, "Title: %s\n", bookings[0].Title)
	if bookings[0].Venue != nil {
		fmt.Fprintf(&sb, "Venue: %s\n", bookings[0].Venue.Name)
	}
	sb.WriteString("Slots (UTC):\n")
	for _, b := range bookings {
		fmt.Fprintf(&sb, "  %s - %s\n",
			b.StartDateTime.Format("02.01.2006 15:04"),
			b.EndDateTime.Format("02.01.2006 15:04"),
		)
	}

	n.send(ctx, booker.Email, subject, sb.String())
}

func (n *EmailNotifier) NotifyBookingsUpdated(ctx context.Context, bookings []*domain.Booking, previousStatuses map[int64]domain.BookingStatus) {
	for _, b := range bookings {
		if b.Booker == nil {
			continue
		}
		if previousStatuses[b.ID] == b.Status {
			continue
		}

		subject := fmt.Sprintf("Booking %s: %s", statusVerb(b.Status), b.Title)

		var sb strings.Builder
		fmt.Fprintf(&sb, "Hi %s,\n\nYour booking has been %s.\n\n", b.Booker.Name, statusVerb(b.Status))
		fmt.Fprintf(&sb, "Title: %s\n", b.Title)
		if b.Venue != nil {
			fmt.Fprintf(&sb, "Venue: %s\n", b.Venue.Name)
		}
		fmt.Fprintf(&sb, "Slot (UTC): %s - %s\n",
			b.StartDateTime.Format("02.01.2006 15:04"),
			b.EndDateTime.Format("02.01.2006 15:04"),
		)

		n.send(ctx, b.Booker.Email, subject, sb.String())
	}
}

func statusVerb(status domain.BookingStatus) string {
	switch status {
	case domain.BookingStatusApproved:
		return "approved"
	case domain.BookingStatusRejected:
		return "rejected"
	case domain.BookingStatusCancelled:
		return "cancelled"
	case domain.BookingStatusPending:
		return "revoked"
	default:
		return "updated"
	}
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) {
	if n.dialer == nil {
		n.logger.Debug("email skipped (smtp disabled)", logger.String("subject", subject))
		return
	}

	if to == "" {
		n.logger.Debug("email skipped (no recipient)", logger.String("subject", subject))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)", logger.String("to", to))
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(msg); err != nil {
		n.logger.Error("failed to send email notification",
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
	}
}
