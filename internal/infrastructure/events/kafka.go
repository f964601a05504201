package events

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"truvamate/internal/domain/entity"
)

// KafkaPublisher buffers order events and writes them from a single
// goroutine, flushing the remainder on shutdown. The inbox channel is never
// closed; shutdown is signalled through done so producers cannot send on a
// closed channel.
type KafkaPublisher struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	done    chan struct{}
	closeCh chan struct{}
}

func NewKafkaPublisher(brokers []string, topic string, buf int) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:   make(chan kafka.Message, buf),
		done:    make(chan struct{}),
		closeCh: make(chan struct{}),
	}
}

func (p *KafkaPublisher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				close(p.done)
				p.drain()
				_ = p.w.Close()
				close(p.closeCh)
				return
			case m := <-p.inbox:
				if err := p.w.WriteMessages(context.Background(), m); err != nil {
					log.Printf("Failed to publish order event: %v", err)
				}
			}
		}
	}()
}

// drain flushes whatever is buffered at shutdown without blocking on new
// sends.
func (p *KafkaPublisher) drain() {
	for {
		select {
		case m := <-p.inbox:
			if err := p.w.WriteMessages(context.Background(), m); err != nil {
				log.Printf("Failed to publish order event: %v", err)
			}
		default:
			return
		}
	}
}

func (p *KafkaPublisher) OrderPlaced(order *entity.Order) {
	value, err := marshalOrderPlaced(order)
	if err != nil {
		log.Printf("Failed to marshal order event: %v", err)
		return
	}

	select {
	case <-p.done:
		log.Printf("Publisher stopped, dropping event for %s", order.ID)
		return
	default:
	}

	select {
	case p.inbox <- kafka.Message{Key: []byte(order.UserID), Value: value, Time: time.Now()}:
	default:
		log.Printf("Order event buffer full, dropping event for %s", order.ID)
	}
}

func (p *KafkaPublisher) WaitClosed() { <-p.closeCh }
