package server_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/weirdos/internal/server"
)

type recordingService struct {
	mu       sync.Mutex
	stopped  bool
	block    chan struct{}
	startErr error
}

func newRecordingService() *recordingService {
	return &recordingService{block: make(chan struct{})}
}

func (s *recordingService) Start() error {
	if s.startErr != nil {
		return s.startErr
	}
	<-s.block
	return nil
}

func (s *recordingService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		s.stopped = true
		close(s.block)
	}
}

func (s *recordingService) wasStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

func TestLifecycle_StopsServicesOnContextCancel(t *testing.T) {
	lc := server.NewLifecycle(zap.NewNop())
	svc := newRecordingService()
	lc.Add("api", svc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- lc.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down")
	}
	assert.True(t, svc.wasStopped())
}

func TestLifecycle_ServiceFailureTriggersShutdown(t *testing.T) {
	lc := server.NewLifecycle(zap.NewNop())
	healthy := newRecordingService()
	failing := newRecordingService()
	failing.startErr = errors.New("bind: address in use")
	lc.Add("api", healthy)
	lc.Add("broken", failing)

	done := make(chan error, 1)
	go func() { done <- lc.Run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down after service failure")
	}
	assert.True(t, healthy.wasStopped())
}

func TestFuncService_Adapts(t *testing.T) {
	started := false
	stopped := false
	svc := &server.FuncService{
		StartFn: func() error { started = true; return nil },
		StopFn:  func() { stopped = true },
	}
	require.NoError(t, svc.Start())
	svc.Stop()
	assert.True(t, started)
	assert.True(t, stopped)
}
