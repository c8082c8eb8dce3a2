package status

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCachesPointers(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyAntCount)
	b := r.Ints.Get(KeyAntCount)
	assert.Same(t, a, b)

	a.Store(12)
	assert.Equal(t, int64(12), b.Load())
	assert.Equal(t, 1, r.TotalCount())
}

func TestRegistryConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(KeyEngineTicks).Add(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(16), r.Ints.Get(KeyEngineTicks).Load())
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	assert.Zero(t, f.Get())
	f.Set(1.25)
	assert.Equal(t, 1.25, f.Get())
}

func TestWriteReportSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyFoodLive).Store(2)
	r.Ints.Get(KeyAntCount).Store(50)
	r.Floats.Get(KeyTickDuration).Set(0.5)

	var buf bytes.Buffer
	require.NoError(t, r.WriteReport(&buf))

	out := buf.String()
	assert.Contains(t, out, "ant.count")
	assert.Contains(t, out, "0.500")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("ant.count")), bytes.Index(buf.Bytes(), []byte("food.live")))
}
