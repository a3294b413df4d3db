package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"linkrotator/internal/models"
)

type countingReader struct {
	reads atomic.Int32
}

func (r *countingReader) Rows(context.Context) []models.MappingRow {
	r.reads.Add(1)
	return nil
}

func (r *countingReader) TTL() time.Duration { return time.Minute }

func TestCacheWarmer_WarmsUntilCancelled(t *testing.T) {
	reader := &countingReader{}
	w := NewCacheWarmer(reader, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return reader.reads.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("warmer did not stop after cancel")
	}
}
