// Package kafka 提供了与 Kafka 消息队列交互的功能。
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"study-assistant/internal/config"
	"study-assistant/pkg/events"
	"study-assistant/pkg/log"

	"github.com/segmentio/kafka-go"
)

// Producer 将问答事件异步写入 Kafka。
type Producer struct {
	writer *kafka.Writer
}

// NewProducer 初始化 Kafka 生产者。未配置 brokers 时返回 nil。
func NewProducer(cfg config.KafkaConfig) *Producer {
	if cfg.Brokers == "" {
		return nil
	}
	w := &kafka.Writer{
		Addr:     kafka.TCP(splitBrokers(cfg.Brokers)...),
		Topic:    cfg.Topic,
		Balancer: &kafka.Hash{},
		// 异步写入，请求路径不等待 broker 确认
		Async: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Errorf("Kafka 消息写入失败: count=%d, err=%v", len(messages), err)
			}
		},
	}
	log.Infof("Kafka 生产者初始化成功, topic=%s", cfg.Topic)
	return &Producer{writer: w}
}

// PublishConversationRecorded 以 session id 作为 key 发送一条问答事件，保证同一会话内有序。
func (p *Producer) PublishConversationRecorded(ctx context.Context, event events.ConversationRecorded) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SessionID),
		Value: value,
	})
}

// Close 刷新缓冲区并关闭生产者。
func (p *Producer) Close() error {
	return p.writer.Close()
}

func splitBrokers(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
