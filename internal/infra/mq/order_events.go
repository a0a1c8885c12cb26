package mq

import (
	"context"
	"encoding/json"

	"marketplace/internal/usecase"

	amqp "github.com/rabbitmq/amqp091-go"
)

const orderQueue = "marketplace_order_events"

// OrderEventPublisher は注文イベントをキューへ流す
type OrderEventPublisher struct {
	conn *amqp.Connection
}

// DI
func NewOrderEventPublisher(conn *amqp.Connection) *OrderEventPublisher {
	return &OrderEventPublisher{conn: conn}
}

// PublishOrderPlaced は order.placed を発行する
func (p *OrderEventPublisher) PublishOrderPlaced(ctx context.Context, ev usecase.OrderPlacedEvent) error {
	if p.conn == nil {
		return nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(orderQueue, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx, "", orderQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
