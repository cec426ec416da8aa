package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HamsterHaven_Go/internal/save"
	"github.com/osse101/HamsterHaven_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)
	pool.Stop()

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_StopDrainsQueue(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	job := &testJob{executed: &executed}
	for i := 0; i < 5; i++ {
		require.True(t, pool.TryEnqueue(job))
	}

	pool.Start()
	pool.Stop()

	assert.Equal(t, int32(5), atomic.LoadInt32(&executed))
}

func TestPool_TryEnqueueFull(t *testing.T) {
	pool := NewPool(1, 1)
	var executed int32
	job := &testJob{executed: &executed}

	assert.True(t, pool.TryEnqueue(job))
	assert.False(t, pool.TryEnqueue(job))
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(4, 4)
		pool.Start()
		pool.Stop()
	})
}

func TestPool_StopTwice(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	assert.NotPanics(t, pool.Stop)
}

type mockSaver struct {
	mock.Mock
	mu sync.Mutex
}

func (m *mockSaver) Save(ctx context.Context, p *save.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Called(ctx, p).Error(0)
}

func TestSaveJob(t *testing.T) {
	profile := save.New("alice")

	t.Run("success", func(t *testing.T) {
		saver := &mockSaver{}
		saver.On("Save", mock.Anything, profile).Return(nil).Once()

		require.NoError(t, NewSaveJob(saver, profile).Process(context.Background()))
		saver.AssertExpectations(t)
	})

	t.Run("failure wraps", func(t *testing.T) {
		boom := errors.New("disk full")
		saver := &mockSaver{}
		saver.On("Save", mock.Anything, profile).Return(boom).Once()

		err := NewSaveJob(saver, profile).Process(context.Background())

		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "alice")
	})
}
