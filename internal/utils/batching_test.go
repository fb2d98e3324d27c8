package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchBuffer_AddAndGetAndClear(t *testing.T) {
	b := NewBatchBuffer[int]()
	b.Add(1)
	b.Add(2)

	assert.Equal(t, 2, b.Size())
	assert.True(t, b.HasData())

	batch := b.GetAndClear()
	assert.Equal(t, []int{1, 2}, batch)
	assert.Equal(t, 0, b.Size())
	assert.Nil(t, b.GetAndClear())
}

func TestBatchBuffer_PeekDoesNotDrain(t *testing.T) {
	b := NewBatchBuffer[string]()
	b.Add("a")

	peeked := b.Peek()
	assert.Equal(t, []string{"a"}, peeked)
	assert.Equal(t, 1, b.Size())

	peeked[0] = "b"
	assert.Equal(t, []string{"a"}, b.Peek())
}

func TestBatchBuffer_ConcurrentAdds(t *testing.T) {
	b := NewBatchBuffer[int]()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			b.Add(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, b.Size())
}
