package mail

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/market-backend/internal/cfg"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	gomail "github.com/wneessen/go-mail"
)

// Sender отправляет письма со ссылкой на оплату через SMTP.
type Sender struct {
	client *gomail.Client
	cfg    *cfg.MailCfg
	logger logger.Logger
}

func NewSender(cfg *cfg.MailCfg, logger logger.Logger) (*Sender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.User),
		gomail.WithPassword(cfg.Password),
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Sender{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// SendPaymentLink отправляет пользователю письмо со ссылкой на оплату заказа.
func (s *Sender) SendPaymentLink(ctx context.Context, email, paymentURL string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if err := msg.To(email); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	msg.Subject("payment link")
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf("follow the link to pay for your order: %s", paymentURL))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	s.logger.Debugf("payment link sent to %s", email)
	return nil
}
