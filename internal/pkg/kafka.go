package pkg

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// 事件类型
const (
	EventPostCreated    = "post.created"
	EventPostDeleted    = "post.deleted"
	EventChannelDeleted = "channel.deleted"
	EventUserBanned     = "user.banned"
	EventUserUnbanned   = "user.unbanned"
)

// FeedEvent 投递到 Kafka 的审计/联动事件
type FeedEvent struct {
	Type      string `json:"type"`
	Channel   string `json:"channel,omitempty"`
	Identity  string `json:"identity,omitempty"`
	DocID     string `json:"docId,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewKafkaProducer(cfg KafkaConfig) (*KafkaProducer, error) {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}, nil
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// Emit 发事件。producer 为 nil（未配置 Kafka）或发送失败都只记日志不影响主流程。
func (p *KafkaProducer) Emit(ctx context.Context, ev FeedEvent) {
	if p == nil || p.writer == nil {
		return
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return
	}
	msg := kafka.Message{
		Key:   []byte(ev.Type),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		Logger.Warn("kafka 事件发送失败", zap.String("type", ev.Type), zap.Error(err))
	}
}
