package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"bookswap/pkg/kafka"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_SendsJSON(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var body map[string]string
		if err := json.Unmarshal(val, &body); err != nil {
			return err
		}
		if body["signal"] != "listingsChanged" {
			return errors.New("unexpected signal " + body["signal"])
		}
		return nil
	})

	pub := kafka.NewPublisher(producer, "bookswap-events")
	err := pub.Publish(context.Background(), "listingsChanged", map[string]string{"signal": "listingsChanged"})
	assert.NoError(t, err)
	require.NoError(t, pub.Close())
}

func TestPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := kafka.NewPublisher(producer, "bookswap-events")
	err := pub.Publish(context.Background(), "authChanged", struct{}{})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, pub.Close())
}
