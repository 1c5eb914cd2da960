package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_Trigger(t *testing.T) {
	em := NewManager[string]()

	var wg sync.WaitGroup
	var lock sync.Mutex
	received := []string{}
	for i := 0; i < 3; i++ {
		wg.Add(1)
		em.RegisterHandler(func(event string) {
			defer wg.Done()
			lock.Lock()
			defer lock.Unlock()
			received = append(received, event)
		})
	}

	em.Trigger("quad")

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handlers were not called")
	}

	assert.Equal(t, []string{"quad", "quad", "quad"}, received)
}

func TestManager_TriggerWithoutHandlers(t *testing.T) {
	em := NewManager[int]()
	assert.NotPanics(t, func() { em.Trigger(1) })
}

func TestManager_TriggerKeepsOrder(t *testing.T) {
	em := NewManager[int]()

	const count = 500
	var lock sync.Mutex
	received := []int{}
	em.RegisterHandler(func(event int) {
		// a slow handler must not let later events overtake earlier ones
		if event%50 == 0 {
			time.Sleep(time.Millisecond)
		}
		lock.Lock()
		defer lock.Unlock()
		received = append(received, event)
	})

	expected := make([]int, 0, count)
	for i := 0; i < count; i++ {
		em.Trigger(i)
		expected = append(expected, i)
	}

	assert.Eventually(t, func() bool {
		lock.Lock()
		defer lock.Unlock()
		return len(received) == count
	}, 2*time.Second, 10*time.Millisecond)

	lock.Lock()
	defer lock.Unlock()
	assert.Equal(t, expected, received)
}
