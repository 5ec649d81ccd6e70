// Package mq RabbitMQ消息发布
//
// 购物车变更提交后发布领域事件到topic exchange，routing key形如 cart.book_added，
// 下游按 cart.# 或 cart.book_* 订阅。
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// Publisher 消息发布者
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
	Close() error
}

// channel amqp.Channel中用到的部分
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher 基于amqp091的发布者
// amqp.Channel不是并发安全的，Publish串行执行
type RabbitPublisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex
	channel  channel
	exchange string
}

// NewRabbitPublisher 连接RabbitMQ并声明持久化的topic exchange
func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	// durable=true, autoDelete=false, internal=false, noWait=false
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("声明Exchange失败: %w", err)
	}

	logger.L().WithField("exchange", exchange).Info("消息发布者已创建")

	return &RabbitPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Publish 消息体为JSON，持久化投递
func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("消息序列化失败: %w", err)
	}

	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	p.mu.Unlock()

	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.MessagesPublishedTotal.WithLabelValues(p.exchange, routingKey, result).Inc()

	if err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}

	logger.FromContext(ctx).WithField("routing_key", routingKey).Debug("消息已发布")
	return nil
}

func (p *RabbitPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher 未启用MQ时使用，丢弃所有消息
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

func (NopPublisher) Close() error { return nil }
