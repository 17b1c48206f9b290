package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
)

// PaymentEventPublisher publica eventos de domínio de pagamentos
type PaymentEventPublisher interface {
	PaymentConfirmed(ctx context.Context, payment *Payment) error
}

// KafkaPaymentPublisher publica eventos de pagamento em um tópico Kafka
type KafkaPaymentPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPaymentPublisher cria um SyncProducer conectado aos brokers informados
func NewKafkaPaymentPublisher(brokers []string) (*KafkaPaymentPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to kafka: %w", err)
	}
	return &KafkaPaymentPublisher{producer: producer, topic: "payments.confirmed"}, nil
}

// PaymentConfirmed publica o evento de confirmação, chaveado pelo transaction id
func (p *KafkaPaymentPublisher) PaymentConfirmed(_ context.Context, payment *Payment) error {
	event := map[string]interface{}{
		"event_type":     "payment_confirmed",
		"transaction_id": payment.TransactionID,
		"user_id":        payment.UserID,
		"product_id":     payment.ProductID,
		"amount":         payment.Amount,
		"created_at":     payment.CreatedAt,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(payment.TransactionID),
		Value: sarama.ByteEncoder(body),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish payment event: %w", err)
	}
	return nil
}

// Close libera o producer subjacente
func (p *KafkaPaymentPublisher) Close() error {
	return p.producer.Close()
}

// NoopPaymentPublisher descarta eventos quando não há broker configurado
type NoopPaymentPublisher struct{}

// PaymentConfirmed não faz nada
func (NoopPaymentPublisher) PaymentConfirmed(context.Context, *Payment) error { return nil }
