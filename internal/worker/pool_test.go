package worker

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	counter *atomic.Int64
}

type countingResult struct {
	err error
}

func (r *countingResult) GetError() error { return r.err }

func (j *countingJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	return &countingResult{}
}

func TestPoolExecutesAllJobs(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(4)
	pool.Start()
	for i := 0; i < 20; i++ {
		pool.Submit(&countingJob{counter: &counter})
	}

	results := pool.Wait()
	assert.Len(t, results, 20)
	assert.Equal(t, int64(20), counter.Load())
}

func TestPoolMinimumOneWorker(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(0)
	pool.Start()
	pool.Submit(&countingJob{counter: &counter})

	results := pool.Wait()
	require.Len(t, results, 1)
	assert.NoError(t, results[0].GetError())
}

func TestPoolShutdownDropsLateSubmissions(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	// Must not block or panic after shutdown
	pool.Submit(&countingJob{counter: &counter})
	assert.Equal(t, int64(0), counter.Load())
}
