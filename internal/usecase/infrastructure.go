package usecase

import "context"

// PaymentGateway — клиент внешнего платёжного сервиса.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, req *PaymentReq) (*PaymentRes, error)
}

// MailSender отправляет пользователю письмо со ссылкой на оплату.
type MailSender interface {
	SendPaymentLink(ctx context.Context, email, paymentURL string) error
}

// MessageProducer пишет сырые сообщения в очередь платёжных задач.
type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
