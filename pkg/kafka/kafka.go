package kafka

import (
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

const (
	CirculationTopic = "circulation-events"
)

type EventType string

const (
	EventBookLent        EventType = "BOOK_LENT"
	EventReturnRequested EventType = "RETURN_REQUESTED"
	EventBookReturned    EventType = "BOOK_RETURNED"
)

// Event is the message published to the stats/notification consumers on
// every circulation state change.
type Event struct {
	Timestamp    time.Time `json:"timestamp"`
	EventType    EventType `json:"eventType"`
	CollegeID    string    `json:"collegeId"`
	BookUID      string    `json:"bookUid"`
	BorrowingUID string    `json:"borrowingUid"`
	StudentID    string    `json:"studentId"`
	Fine         int       `json:"fine,omitempty"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type Publisher interface {
	Publish(topic string, v any) error
}

func NewPublisher(producer sarama.SyncProducer) Publisher {
	return &publisherImpl{
		producer: producer,
	}
}

type publisherImpl struct {
	producer sarama.SyncProducer
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (p *publisherImpl) Publish(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}
