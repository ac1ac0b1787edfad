package kafka

import (
	"github.com/Shopify/sarama"
)

type IConsumer interface {
	Messages() <-chan *sarama.ConsumerMessage
	Errors() <-chan *sarama.ConsumerError
}

// NewConsumer reads from the newest offset: refresh signals published
// before the process started are stale, the boot-time load covers them.
func NewConsumer(host string, topic string) (IConsumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Return.Errors = true
	conn, err := sarama.NewConsumer([]string{host}, config)
	if err != nil {
		return nil, err
	}

	partitionConn, err := conn.ConsumePartition(topic, 0, sarama.OffsetNewest)
	if err != nil {
		return nil, err
	}

	return partitionConn, nil
}
