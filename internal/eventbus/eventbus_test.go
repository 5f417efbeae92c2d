package eventbus

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusPublishSubscribe(t *testing.T) {
	b := New[string]()
	sub := b.Subscribe()
	b.Publish("hello")
	assert.Equal(t, "hello", <-sub)
	b.Close()
	_, open := <-sub
	assert.False(t, open)
}

func TestBusUnsubscribe(t *testing.T) {
	b := New[int]()
	sub := b.Subscribe()
	b.Unsubscribe(sub)
	b.Publish(1)
	_, open := <-sub
	assert.False(t, open)
	b.Close()
}

func TestBusDropsWhenFull(t *testing.T) {
	b := New[int]()
	_ = b.Subscribe()
	for i := 0; i < 20; i++ {
		b.Publish(i)
	}
	require.Greater(t, b.Dropped(), 0)
	b.Close()
}

func TestBusPublishAfterClose(t *testing.T) {
	b := New[int]()
	b.Close()
	b.Publish(1)
	sub := b.Subscribe()
	_, open := <-sub
	assert.False(t, open)
}

func TestBusConcurrentPublishers(t *testing.T) {
	b := New[int]()
	_ = b.Subscribe()

	const publishers = 4
	const perPublisher = 500
	var wg sync.WaitGroup
	for p := 0; p < publishers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perPublisher; i++ {
				b.Publish(i)
			}
		}()
	}
	wg.Wait()

	// The subscriber buffer holds 16; everything past that is dropped.
	assert.Equal(t, publishers*perPublisher-16, b.Dropped())
	b.Close()
}
