package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

const trackingQRContentID = "order-tracking-qr"

// ComposeConfirmation builds the confirmation mail for an order. It is a
// pure function of the order and base URL: the same order always yields the
// same subject and body.
func ComposeConfirmation(order *entity.Order, trackingBaseURL string) (subject, body string) {
	subject = fmt.Sprintf("訂單確認 #%s", shortOrderRef(order))

	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<p>%s 您好，</p>", html.EscapeString(order.ShippingAddress.FullName))
	fmt.Fprintf(&b, "<p>我們已收到您的訂單 <strong>#%s</strong>，目前狀態為「%s」。</p>",
		order.ID.String(), statusLabel(order.Status))

	b.WriteString("<table><tr><th>商品</th><th>數量</th><th>單價</th><th>小計</th></tr>")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(line.Product.Name),
			line.Quantity,
			line.Product.Price.StringFixed(2),
			line.LineTotal().StringFixed(2),
		)
	}
	b.WriteString("</table>")

	fmt.Fprintf(&b, "<p>商品小計：%s<br>運費：%s<br><strong>總計：%s</strong></p>",
		order.Subtotal.StringFixed(2),
		order.ShippingFee.StringFixed(2),
		order.GrandTotal.StringFixed(2),
	)

	addr := order.ShippingAddress
	fmt.Fprintf(&b, "<p>收件地址：<br>%s<br>%s",
		html.EscapeString(addr.Line1), html.EscapeString(addr.City))
	if addr.Line2 != "" {
		fmt.Fprintf(&b, "<br>%s", html.EscapeString(addr.Line2))
	}
	fmt.Fprintf(&b, "<br>%s %s</p>", html.EscapeString(addr.PostalCode), html.EscapeString(addr.Country))

	if trackingBaseURL != "" {
		fmt.Fprintf(&b, `<p>您可以隨時在 <a href="%s/%s">這裡</a> 查詢訂單狀態，或掃描下方條碼：</p>`,
			trackingBaseURL, order.ID.String())
		fmt.Fprintf(&b, `<img src="cid:%s" alt="order tracking QR">`, trackingQRContentID)
	}

	b.WriteString("</body></html>")

	return subject, b.String()
}

func shortOrderRef(order *entity.Order) string {
	id := order.ID.String()
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

func statusLabel(status entity.OrderStatus) string {
	switch status {
	case entity.OrderStatusPending:
		return "待處理"
	case entity.OrderStatusProcessing:
		return "處理中"
	case entity.OrderStatusShipped:
		return "已出貨"
	case entity.OrderStatusDelivered:
		return "已送達"
	case entity.OrderStatusCancelled:
		return "已取消"
	default:
		return status.String()
	}
}

type orderMailer struct {
	logger          *slog.Logger
	sender          service.MailSender
	qrSvc           service.QRCodeService
	trackingBaseURL string
}

// NewOrderMailer creates the confirmation dispatcher. A missing SMTP
// configuration is surfaced here once, at startup, and disables sending
// without blocking order creation.
func NewOrderMailer(logger *slog.Logger, sender service.MailSender, qrSvc service.QRCodeService, cfg *config.Config) usecase.OrderNotifier {
	var baseURL string
	if cfg.SMTP != nil {
		baseURL = cfg.SMTP.TrackingBaseURL
	}
	if !sender.Enabled() {
		logger.Warn("SMTP not configured, order confirmation mail disabled",
			slog.String("error_code", domainerrors.ErrMailConfigMissing.ErrorCode()),
		)
	}

	return &orderMailer{
		logger:          logger,
		sender:          sender,
		qrSvc:           qrSvc,
		trackingBaseURL: baseURL,
	}
}

// NotifyOrderCreated composes and sends the confirmation mail for the order.
func (m *orderMailer) NotifyOrderCreated(ctx context.Context, order *entity.Order) error {
	if !m.sender.Enabled() {
		return domainerrors.ErrMailConfigMissing
	}

	subject, body := ComposeConfirmation(order, m.trackingBaseURL)

	var inline []service.InlineImage
	if m.trackingBaseURL != "" {
		png, err := m.qrSvc.GenerateOrderQR(order.ID)
		if err != nil {
			// The mail is still worth sending without the QR attachment.
			m.logger.Warn("failed to generate tracking QR for confirmation mail",
				slog.String("order_id", order.ID.String()),
				slog.Any("error", err),
			)
		} else {
			inline = append(inline, service.InlineImage{
				ContentID: trackingQRContentID,
				Filename:  "order-qr.png",
				Data:      png,
			})
		}
	}

	if err := m.sender.Send(ctx, order.ShippingAddress.Email, subject, body, inline...); err != nil {
		return errors.Wrap(err, "failed to send confirmation mail")
	}

	return nil
}
