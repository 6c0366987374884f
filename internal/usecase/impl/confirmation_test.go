package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func confirmationOrder() *entity.Order {
	subtotal := decimal.RequireFromString("25.00")

	return &entity.Order{
		ID:     uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		UserID: "user-1",
		Lines: []entity.CartLine{
			{
				Product: entity.ProductSnapshot{
					ProductID: "p1",
					Name:      "Coffee <Dark>",
					Price:     decimal.RequireFromString("10.00"),
				},
				Quantity: 2,
			},
			{
				Product: entity.ProductSnapshot{
					ProductID: "p2",
					Name:      "Tea",
					Price:     decimal.RequireFromString("5.00"),
				},
				Quantity: 1,
			},
		},
		ShippingAddress: entity.ShippingAddress{
			FullName:   "王小明",
			Email:      "buyer@example.com",
			Line1:      "中山路 100 號",
			City:       "台北市",
			PostalCode: "104",
			Country:    "TW",
		},
		Subtotal:    subtotal,
		ShippingFee: decimal.Zero,
		GrandTotal:  subtotal,
		Status:      entity.OrderStatusPending,
	}
}

func TestComposeConfirmation_Deterministic(t *testing.T) {
	order := confirmationOrder()

	subject1, body1 := ComposeConfirmation(order, "https://shop.example.com/orders")
	subject2, body2 := ComposeConfirmation(order, "https://shop.example.com/orders")

	assert.Equal(t, subject1, subject2)
	assert.Equal(t, body1, body2)
}

func TestComposeConfirmation_Content(t *testing.T) {
	order := confirmationOrder()

	subject, body := ComposeConfirmation(order, "https://shop.example.com/orders")

	assert.Equal(t, "訂單確認 #11111111", subject)
	assert.Contains(t, body, "王小明")
	assert.Contains(t, body, order.ID.String())
	// Product names are HTML-escaped.
	assert.Contains(t, body, "Coffee &lt;Dark&gt;")
	assert.NotContains(t, body, "Coffee <Dark>")
	assert.Contains(t, body, "<td>2</td>")
	assert.Contains(t, body, "總計：25.00")
	assert.Contains(t, body, "中山路 100 號")
	assert.Contains(t, body, "https://shop.example.com/orders/"+order.ID.String())
	assert.Contains(t, body, `cid:order-tracking-qr`)
}

func TestComposeConfirmation_NoTrackingURL(t *testing.T) {
	_, body := ComposeConfirmation(confirmationOrder(), "")

	assert.NotContains(t, body, "cid:")
	assert.NotContains(t, body, "<a href=")
}

func newOrderMailerForTest(t *testing.T, smtp *config.SMTPConfig) (*orderMailer, *mockSvc.MockMailSender, *mockSvc.MockQRCodeService) {
	t.Helper()

	sender := mockSvc.NewMockMailSender(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)
	cfg := newTestConfig()
	cfg.SMTP = smtp

	sender.EXPECT().Enabled().Return(smtp != nil)

	notifier := NewOrderMailer(newDiscardLogger(), sender, qrSvc, cfg)
	mailer, ok := notifier.(*orderMailer)
	require.True(t, ok)

	return mailer, sender, qrSvc
}

func TestOrderMailer_NotifyOrderCreated(t *testing.T) {
	mailer, sender, qrSvc := newOrderMailerForTest(t, &config.SMTPConfig{
		Host:            "smtp.example.com",
		TrackingBaseURL: "https://shop.example.com/orders",
	})
	ctx := context.Background()
	order := confirmationOrder()
	png := []byte{0x89, 'P', 'N', 'G'}

	qrSvc.EXPECT().
		GenerateOrderQR(order.ID).
		Return(png, nil)

	sender.EXPECT().
		Send(ctx, "buyer@example.com", mock.MatchedBy(func(subject string) bool {
			return strings.HasPrefix(subject, "訂單確認 #")
		}), mock.AnythingOfType("string"), mock.MatchedBy(func(img service.InlineImage) bool {
			return img.ContentID == "order-tracking-qr" && len(img.Data) > 0
		})).
		Return(nil)

	require.NoError(t, mailer.NotifyOrderCreated(ctx, order))
}

func TestOrderMailer_SenderDisabled(t *testing.T) {
	mailer, _, _ := newOrderMailerForTest(t, nil)

	err := mailer.NotifyOrderCreated(context.Background(), confirmationOrder())
	assert.ErrorIs(t, err, domainerrors.ErrMailConfigMissing)
}

func TestOrderMailer_QRFailureStillSends(t *testing.T) {
	mailer, sender, qrSvc := newOrderMailerForTest(t, &config.SMTPConfig{
		Host:            "smtp.example.com",
		TrackingBaseURL: "https://shop.example.com/orders",
	})
	ctx := context.Background()
	order := confirmationOrder()

	qrSvc.EXPECT().
		GenerateOrderQR(order.ID).
		Return(nil, errors.New("encoder failure"))

	// The mail goes out without the inline attachment.
	sender.EXPECT().
		Send(ctx, "buyer@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)

	require.NoError(t, mailer.NotifyOrderCreated(ctx, order))
}

func TestOrderMailer_SendFailure(t *testing.T) {
	mailer, sender, qrSvc := newOrderMailerForTest(t, &config.SMTPConfig{
		Host:            "smtp.example.com",
		TrackingBaseURL: "https://shop.example.com/orders",
	})
	ctx := context.Background()
	order := confirmationOrder()

	qrSvc.EXPECT().
		GenerateOrderQR(order.ID).
		Return([]byte{1, 2, 3}, nil)
	sender.EXPECT().
		Send(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	err := mailer.NotifyOrderCreated(ctx, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send confirmation mail")
}
