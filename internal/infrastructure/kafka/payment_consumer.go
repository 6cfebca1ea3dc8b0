package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/DRSN-tech/market-backend/internal/cfg"
	"github.com/DRSN-tech/market-backend/internal/usecase"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// PaymentConsumer читает платёжные задачи из Kafka и запускает обработку заказа.
// Ошибки обработки логируются, сообщение подтверждается в любом случае:
// повторная доставка не создаст второй платёж, но и не исправит данные задачи.
type PaymentConsumer struct {
	reader    *kafka.Reader
	paymentUC usecase.PaymentUC
	logger    logger.Logger
	wg        sync.WaitGroup
}

type paymentTask struct {
	OrderID int64 `json:"order_id"`
}

func NewPaymentConsumer(paymentUC usecase.PaymentUC, logger logger.Logger, cfg *cfg.KafkaCfg) *PaymentConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // синхронный commit
		MaxWait:        time.Second,
	})

	return &PaymentConsumer{
		reader:    reader,
		paymentUC: paymentUC,
		logger:    logger,
	}
}

func (c *PaymentConsumer) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx)
	}()
}

func (c *PaymentConsumer) Stop() error {
	err := c.reader.Close()
	c.wg.Wait()
	return err
}

func (c *PaymentConsumer) run(ctx context.Context) {
	c.logger.Infof("Payment consumer started, group: %s", c.reader.Config().GroupID)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				c.logger.Infof("Payment consumer stopped")
				return
			}
			c.logger.Warnf("Fetch message failed: %v", err)
			continue
		}

		c.handleMessage(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Warnf("Commit failed for offset %d: %v", msg.Offset, err)
		}
	}
}

func (c *PaymentConsumer) handleMessage(ctx context.Context, msg kafka.Message) {
	var task paymentTask
	if err := json.Unmarshal(msg.Value, &task); err != nil {
		c.logger.Warnf("Malformed payment task at offset %d: %v", msg.Offset, err)
		return
	}

	if err := c.paymentUC.ProcessPayment(ctx, task.OrderID); err != nil {
		c.logger.Errorf(err, "payment processing failed, order: %d", task.OrderID)
	}
}
