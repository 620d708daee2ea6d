package server

import (
	"net"
	"sync"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/devlance074/pricing-ui-kit/internal/logger"
)

// SessionLimitMiddleware turns sessions away once max are open.
func SessionLimitMiddleware(max int, log *logger.Logger) wish.Middleware {
	if max <= 0 {
		max = 32
	}

	var mu sync.Mutex
	active := 0

	acquire := func() bool {
		mu.Lock()
		defer mu.Unlock()
		if active >= max {
			return false
		}
		active++
		return true
	}
	release := func() {
		mu.Lock()
		defer mu.Unlock()
		active--
	}

	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			if !acquire() {
				log.WithFields(map[string]any{
					"remote":       remoteIP(s),
					"max_sessions": max,
				}).Warn("session limit reached")
				_, _ = s.Write([]byte("too many sessions, try again later\n"))
				return
			}
			defer release()
			next(s)
		}
	}
}

func remoteIP(s ssh.Session) string {
	remote := s.RemoteAddr()
	if remote == nil {
		return "unknown"
	}

	host, _, err := net.SplitHostPort(remote.String())
	if err != nil {
		return remote.String()
	}
	if host == "" {
		return "unknown"
	}
	return host
}
