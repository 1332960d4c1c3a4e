package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_MustWriteAndBytes(t *testing.T) {
	bb := newByteBuffer(16)

	bb.MustWrite([]byte("hello"))
	bb.MustWrite([]byte(" world"))

	require.Equal(t, "hello world", string(bb.Bytes()))
	require.Equal(t, 11, bb.Len())
}

func TestByteBuffer_MustWriteGrowsPastInitialCapacity(t *testing.T) {
	bb := newByteBuffer(2)

	data := make([]byte, 1024)
	for i := range data {
		data[i] = byte(i)
	}

	bb.MustWrite(data)
	require.Equal(t, data, bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := newByteBuffer(16)
	bb.MustWrite([]byte("data"))

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Empty(t, bb.Bytes())
}

func TestByteBufferPool_GetPutReuse(t *testing.T) {
	p := NewByteBufferPool(16, 1024)

	bb := p.Get()
	bb.MustWrite([]byte("abc"))
	p.Put(bb)

	reused := p.Get()
	require.Empty(t, reused.Bytes(), "Put must reset before returning to the pool")
}

func TestByteBufferPool_PutNilIsNoop(t *testing.T) {
	p := NewByteBufferPool(16, 1024)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestByteBufferPool_DiscardsOverThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 8)

	bb := newByteBuffer(16)
	bb.MustWrite(make([]byte, 32))
	p.Put(bb)

	got := p.Get()
	require.NotSame(t, bb, got, "oversized buffer must not be retained")
}

func TestByteBufferPool_ZeroThresholdNeverDiscards(t *testing.T) {
	p := NewByteBufferPool(16, 0)

	bb := newByteBuffer(16)
	bb.MustWrite(make([]byte, 1<<20))
	p.Put(bb)

	got := p.Get()
	require.Same(t, bb, got)
}

func TestGetPutFrameBuffer(t *testing.T) {
	bb := GetFrameBuffer()
	require.NotNil(t, bb)

	bb.MustWrite([]byte("frame"))
	PutFrameBuffer(bb)

	reused := GetFrameBuffer()
	require.Empty(t, reused.Bytes())
}

func TestFrameBufferPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			bb := GetFrameBuffer()
			bb.MustWrite([]byte("concurrent"))
			PutFrameBuffer(bb)
		}()
	}

	wg.Wait()
}
