package goroutine

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warden-inc/warden/internal/shared/logger"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	out := &syncBuffer{}
	log := logger.NewLoggerWithSlog(slog.New(slog.NewJSONHandler(out, nil)))

	done := make(chan struct{})
	SafeGo(log, "worker", func() {
		defer close(done)
		panic("boom")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}

	require.Eventually(t, func() bool { return out.String() != "" }, time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), `"goroutine":"worker"`)
	assert.Contains(t, out.String(), `"panic":"boom"`)
}
