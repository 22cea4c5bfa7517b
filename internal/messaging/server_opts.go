package messaging

import "time"

type ServerOpt func(*Server)

// WithStartTimeout sets how long Start waits for the server to accept
// connections.
func WithStartTimeout(d time.Duration) ServerOpt {
	return func(s *Server) {
		s.startupTimeout = d
	}
}

// WithHost sets the bind host.
func WithHost(host string) ServerOpt {
	return func(s *Server) {
		s.host = host
	}
}

// WithPort sets the bind port. Zero picks an ephemeral port.
func WithPort(port int) ServerOpt {
	return func(s *Server) {
		s.port = port
	}
}
