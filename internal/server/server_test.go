package server

import (
	"bytes"
	"context"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlance074/pricing-ui-kit/internal/config"
)

func testSSHConfig(t *testing.T, port int) config.SSH {
	t.Helper()
	return config.SSH{
		Host:        "127.0.0.1",
		Port:        port,
		HostKeyPath: filepath.Join(t.TempDir(), "host_ed25519"),
		IdleTimeout: time.Minute,
		MaxSessions: 4,
	}
}

func TestNewRuntime(t *testing.T) {
	t.Parallel()

	cfg := testSSHConfig(t, 23234)
	runtime, err := New(cfg, Options{})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:23234", runtime.Address())
	assert.FileExists(t, cfg.HostKeyPath, "host key is generated on first start")
	assert.NotNil(t, runtime.opts.Registry)
}

func TestRunStopsWhenContextEnds(t *testing.T) {
	t.Parallel()

	runtime, err := New(testSSHConfig(t, 0), Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- runtime.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

type fakeSession struct {
	ssh.Session

	mu     sync.Mutex
	out    bytes.Buffer
	remote net.Addr
}

func (f *fakeSession) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.Write(p)
}

func (f *fakeSession) RemoteAddr() net.Addr { return f.remote }

func (f *fakeSession) written() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.String()
}

func newFakeSession() *fakeSession {
	return &fakeSession{remote: &net.TCPAddr{IP: net.ParseIP("10.0.0.7"), Port: 52100}}
}

func TestSessionLimitMiddleware(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	handler := SessionLimitMiddleware(1, nil)(func(ssh.Session) {
		close(started)
		<-release
	})

	first := newFakeSession()
	finished := make(chan struct{})
	go func() {
		handler(first)
		close(finished)
	}()
	<-started

	second := newFakeSession()
	handler(second)
	assert.Contains(t, second.written(), "too many sessions")

	close(release)
	<-finished
	assert.Empty(t, first.written())

	// the slot is free again
	var ran bool
	SessionLimitMiddleware(1, nil)(func(ssh.Session) { ran = true })(newFakeSession())
	assert.True(t, ran)
}

func TestRemoteIP(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10.0.0.7", remoteIP(newFakeSession()))
	assert.Equal(t, "unknown", remoteIP(&fakeSession{}))
}
