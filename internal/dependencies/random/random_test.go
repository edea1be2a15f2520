package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntnStaysInRange(t *testing.T) {
	r := New()
	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}

func TestIntnNonPositive(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-5))
}

func TestIntnConcurrentUse(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v := r.Intn(100)
				assert.True(t, v >= 0 && v < 100)
			}
		}()
	}
	wg.Wait()
}
