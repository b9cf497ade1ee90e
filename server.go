package mcwire

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gstoney/mcwire/packet"
)

var (
	ErrServerClosed     = errors.New("mcwire: server closed")
	ErrUnexpectedPacket = errors.New("unexpected packet")
	ErrInvalidIntention = errors.New("handshake requests neither status nor login")
)

// A Server accepts client connections, reads their handshake and hands the
// connection to Handler in the requested phase.
type Server struct {
	Addr    string
	Handler Handler
	Config  TransportConfig
	Logger  zerolog.Logger

	// HandshakeTimeout bounds the wait for the handshake packet. Zero means
	// no limit.
	HandshakeTimeout time.Duration

	mu       sync.Mutex
	listener net.Listener
	conns    map[net.Conn]struct{}
	closed   bool
	wg       sync.WaitGroup
}

// Handler drives a connection after the handshake. The connection is closed
// when it returns.
type Handler func(s *Session, c *Conn) error

// A Session stores connection and states of a client.
type Session struct {
	LocalAddr  net.Addr
	RemoteAddr net.Addr

	ProtocolVersion int32
	ServerAddr      string
	ServerPort      uint16
	Intent          packet.Phase

	// Filled in by the handler once the client names itself.
	Name       string
	PlayerUUID uuid.UUID

	ConnectedAt time.Time
}

// ListenAndServe listens on s.Addr, or ":25565" when empty, and calls Serve.
func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = ":25565"
	}

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Serve accepts incoming connections on the Listener l,
// creating a new goroutine for each.
// The goroutines read handshake packet and pass the connection to Handler.
// Serve always returns a non-nil error; after Close it is ErrServerClosed.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		l.Close()
		return ErrServerClosed
	}
	s.listener = l
	if s.conns == nil {
		s.conns = make(map[net.Conn]struct{})
	}
	s.mu.Unlock()

	s.Logger.Info().Str("addr", l.Addr().String()).Msg("listening")

	var delay time.Duration
	for {
		c, err := l.Accept()
		if err != nil {
			if s.shuttingDown() {
				return ErrServerClosed
			}

			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				if delay == 0 {
					delay = 5 * time.Millisecond
				} else if delay *= 2; delay > time.Second {
					delay = time.Second
				}
				s.Logger.Warn().Err(err).Dur("retry_in", delay).Msg("accept failed")
				time.Sleep(delay)
				continue
			}
			return err
		}
		delay = 0

		if !s.track(c) {
			c.Close()
			return ErrServerClosed
		}
		go s.serveConn(c)
	}
}

// Close stops accepting, closes every open connection and waits for their
// handlers to return.
func (s *Server) Close() error {
	s.mu.Lock()
	s.closed = true

	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	for c := range s.conns {
		c.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
	return err
}

func (s *Server) shuttingDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Server) track(c net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[c] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *Server) untrack(c net.Conn) {
	s.mu.Lock()
	delete(s.conns, c)
	s.mu.Unlock()
}

func (s *Server) serveConn(c net.Conn) {
	defer s.wg.Done()
	defer s.untrack(c)
	defer c.Close()

	logger := s.Logger.With().Str("remote", c.RemoteAddr().String()).Logger()

	conn := NewConn(c, packet.Serverbound, s.Config)
	session, err := s.handshake(c, conn)
	if err != nil {
		logger.Debug().Err(err).Msg("handshake failed")
		return
	}

	logger.Debug().
		Int32("protocol", session.ProtocolVersion).
		Str("host", session.ServerAddr).
		Uint16("port", session.ServerPort).
		Stringer("intent", session.Intent).
		Msg("handshake")

	if s.Handler == nil {
		return
	}
	err = s.Handler(session, conn)
	switch {
	case err == nil, s.shuttingDown():
	case errors.Is(err, io.EOF):
		logger.Debug().Stringer("phase", conn.Phase()).Msg("client hung up")
	default:
		logger.Warn().Err(err).Stringer("phase", conn.Phase()).Msg("session ended")
	}
}

// handshake reads the ClientIntention and moves conn to the phase it asks for.
func (s *Server) handshake(c net.Conn, conn *Conn) (*Session, error) {
	if s.HandshakeTimeout > 0 {
		c.SetReadDeadline(time.Now().Add(s.HandshakeTimeout))
		defer c.SetReadDeadline(time.Time{})
	}

	p, err := conn.ReadPacket()
	if err != nil {
		return nil, err
	}

	hs, ok := p.(*packet.ClientIntention)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedPacket, p)
	}
	if hs.Intention != packet.Status && hs.Intention != packet.Login {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIntention, hs.Intention)
	}

	conn.SetPhase(hs.Intention)

	return &Session{
		LocalAddr:       c.LocalAddr(),
		RemoteAddr:      c.RemoteAddr(),
		ProtocolVersion: hs.ProtocolVersion,
		ServerAddr:      hs.HostName,
		ServerPort:      hs.Port,
		Intent:          hs.Intention,
		ConnectedAt:     time.Now(),
	}, nil
}
