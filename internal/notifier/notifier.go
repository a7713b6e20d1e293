// Package notifier consumes the order_updates fanout and logs every
// order event, standing in for push/SMS delivery.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"fuelmate/internal/common/logger"
	"fuelmate/internal/common/mq"
	"fuelmate/internal/config"
	"fuelmate/internal/domain"
)

// Run consumes until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, lg *logger.Logger) error {
	if err := cfg.ValidateMQ(); err != nil {
		return err
	}
	mqc, err := mq.Dial(cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("rabbitmq connect: %w", err)
	}
	defer mqc.Close()
	if err := mqc.DeclareTopology(); err != nil {
		return fmt.Errorf("rabbitmq topology: %w", err)
	}

	deliveries, err := mqc.Consume(mq.UpdatesQueue, "notifier", 1)
	if err != nil {
		return fmt.Errorf("consume %s: %w", mq.UpdatesQueue, err)
	}
	lg.Info("consuming", map[string]any{"queue": mq.UpdatesQueue})

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			var ev domain.OrderEvent
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				lg.Error("event_decode_failed", err, nil)
				_ = d.Nack(false, false)
				continue
			}
			fields := map[string]any{
				"order_id": ev.OrderID,
				"event":    ev.EventType,
				"status":   ev.Status,
				"customer": ev.Customer,
			}
			if ev.DriverName != "" {
				fields["driver"] = ev.DriverName
			}
			lg.Info("order_update", fields)
			_ = d.Ack(false)
		}
	}
}
