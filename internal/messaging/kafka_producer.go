package messaging

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	"github.com/AutoHubWeb/AdminPanel/internal/config"
)

// 事件类型常量
const (
	EventTypeOrderSetupCompleted  = "order.setup.completed"
	EventTypeOrderApiKeyChanged   = "order.apikey.changed"
	EventTypeBalanceAdjusted      = "user.balance.adjusted"
	EventTypeUserLocked           = "user.locked"
	EventTypeUserUnlocked         = "user.unlocked"
	EventTypeProductStatusChanged = "product.status.changed"
)

// Event Kafka消息事件结构
type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderSetupPayload 订单开通事件载荷
type OrderSetupPayload struct {
	OrderID     string `json:"orderId"`
	Code        string `json:"code"`
	Type        string `json:"type"`
	UserID      string `json:"userId"`
	CompletedAt string `json:"completedAt"`
}

// BalanceAdjustedPayload 余额调整事件载荷
type BalanceAdjustedPayload struct {
	UserID        string  `json:"userId"`
	TransactionID string  `json:"transactionId"`
	Action        string  `json:"action"`
	Amount        float64 `json:"amount"`
	BalanceAfter  float64 `json:"balanceAfter"`
}

// UserLockPayload 用户锁定事件载荷
type UserLockPayload struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// ProductStatusPayload 商品状态变更事件载荷
type ProductStatusPayload struct {
	Kind   string `json:"kind"` // tool/vps/proxy
	ID     string `json:"id"`
	Status int    `json:"status"`
}

// Producer 事件生产者接口，服务层依赖该接口以便测试替换
type Producer interface {
	SendEvent(eventType string, payload interface{}) error
	Close() error
}

// KafkaProducer Kafka生产者
type KafkaProducer struct {
	topic    string
	producer sarama.SyncProducer
}

var _ Producer = (*KafkaProducer)(nil)

// NewKafkaProducer 创建新的Kafka生产者
func NewKafkaProducer(cfg config.KafkaConfig) (*KafkaProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V2_8_1_0
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll // 等待所有副本确认
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, err
	}

	return &KafkaProducer{
		topic:    cfg.Topic,
		producer: producer,
	}, nil
}

// SendEvent 发送事件到Kafka
func (k *KafkaProducer) SendEvent(eventType string, payload interface{}) error {
	event := Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(eventType),
		Value: sarama.ByteEncoder(data),
	}

	_, _, err = k.producer.SendMessage(msg)
	return err
}

// Close 关闭Kafka生产者
func (k *KafkaProducer) Close() error {
	return k.producer.Close()
}

// NopProducer 空实现，未启用Kafka时使用
type NopProducer struct{}

var _ Producer = (*NopProducer)(nil)

// SendEvent 丢弃事件
func (NopProducer) SendEvent(string, interface{}) error { return nil }

// Close 无操作
func (NopProducer) Close() error { return nil }
