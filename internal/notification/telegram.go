package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

// TelegramNotifier posts booking notices to a single ops chat. Customers
// book by phone or at the desk and leave contact details, not chat ids, so
// the chat is configured once for the whole deployment.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, notice *domain.BookingNotice) {
	text := fmt.Sprintf(
		"*New booking*\n\n"+"Film: %s\n"+"Showing (UTC): %s\n"+"Customer: %s\n"+"Seats: %d",
		notice.FilmTitle, notice.ShowTime.Format("02.01.2006 15:04"),
		notice.CustomerName, notice.Seats,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, notice *domain.BookingNotice) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Film: %s\n"+"Showing (UTC): %s\n"+"Customer: %s\n"+"Seats released: %d",
		notice.FilmTitle, notice.ShowTime.Format("02.01.2006 15:04"),
		notice.CustomerName, notice.Seats,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
