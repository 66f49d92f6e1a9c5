package kafka

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTopics() []string {
	return []string{
		TopicCargoHandled,
		TopicCargoMisdirected,
		TopicCargoArrived,
		TopicHandlingReceived,
	}
}

func TestNewPublisher_CreatesWriterPerTopic(t *testing.T) {
	publisher := NewPublisher([]string{"localhost:9092"})

	require.Len(t, publisher.writers, len(allTopics()))
	for _, topic := range allTopics() {
		writer := publisher.getWriter(topic)
		require.NotNil(t, writer, topic)
		assert.Equal(t, topic, writer.Topic)
	}
}

func TestGetWriter_SafeForConcurrentUse(t *testing.T) {
	publisher := NewPublisher([]string{"localhost:9092"})

	// One publisher instance is shared between request handlers and the
	// report scanner, so writer lookup must tolerate concurrent callers
	// hitting every topic at once.
	var wg sync.WaitGroup
	for range 16 {
		for _, topic := range allTopics() {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NotNil(t, publisher.getWriter(topic))
			}()
		}
	}
	wg.Wait()

	for _, topic := range allTopics() {
		assert.Same(t, publisher.getWriter(topic), publisher.writers[topic])
	}
}
