package xpromise_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/genkit/pkg/util/xpromise"
)

func TestPromise_Wait(t *testing.T) {
	t.Parallel()

	p := xpromise.New(func() (int, error) { return 42, nil })

	got, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	// 结果缓存，重复等待返回同一结果
	got, err = p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestPromise_Error(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	p := xpromise.New(func() (string, error) { return "", wantErr })

	got, err := p.Wait(context.Background())
	require.ErrorIs(t, err, wantErr)
	assert.Empty(t, got)
}

func TestPromise_RunsExactlyOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	p := xpromise.New(func() (int, error) {
		calls.Add(1)
		return 1, nil
	})

	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			_, err := p.Wait(context.Background())
			assert.NoError(t, err)
		})
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestPromise_WaitContextCancelled(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	p := xpromise.New(func() (int, error) {
		<-release
		return 7, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// 取消只放弃本次等待，计算照常完成
	close(release)
	got, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestPromise_WaitTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	p := xpromise.New(func() (int, error) {
		<-release
		return 0, nil
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPromise_Done(t *testing.T) {
	t.Parallel()

	p := xpromise.New(func() (int, error) { return 1, nil })
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("Done 未在预期时间内关闭")
	}

	got, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestPromise_NilFunc(t *testing.T) {
	t.Parallel()

	p := xpromise.New[int](nil)
	_, err := p.Wait(context.Background())
	require.ErrorIs(t, err, xpromise.ErrNilFunc)
}

func TestResolved(t *testing.T) {
	t.Parallel()

	p := xpromise.Resolved("cached", nil)
	got, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached", got)

	wantErr := errors.New("precomputed failure")
	pe := xpromise.Resolved(0, wantErr)
	_, err = pe.Wait(context.Background())
	require.ErrorIs(t, err, wantErr)
}
