// Package gateway answers the server list and login screens on behalf of a
// backend server that may be powered off, and powers it on when a player
// tries to join.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gstoney/mcwire"
	"github.com/gstoney/mcwire/packet"
)

// Gateway is an mcwire.Handler backed by a Waker.
type Gateway struct {
	cfg    Config
	waker  Waker
	logger zerolog.Logger
}

func New(cfg Config, waker Waker, logger zerolog.Logger) *Gateway {
	return &Gateway{
		cfg:    cfg,
		waker:  waker,
		logger: logger.With().Str("component", "gateway").Logger(),
	}
}

// Handle serves one connection in the phase its handshake asked for.
func (g *Gateway) Handle(s *mcwire.Session, c *mcwire.Conn) error {
	switch s.Intent {
	case packet.Status:
		return g.serveStatus(c)
	case packet.Login:
		return g.serveLogin(s, c)
	}
	return fmt.Errorf("%w: %s", mcwire.ErrInvalidIntention, s.Intent)
}

func (g *Gateway) state() State {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(g.cfg.StatusTimeout)*time.Second)
	defer cancel()

	st, err := g.waker.State(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Msg("instance state query failed")
		return StateUnknown
	}
	return st
}

type statusVersion struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

type statusPlayers struct {
	Max    int `json:"max"`
	Online int `json:"online"`
}

type textComponent struct {
	Text string `json:"text"`
}

type statusDocument struct {
	Version     statusVersion `json:"version"`
	Players     statusPlayers `json:"players"`
	Description textComponent `json:"description"`
}

// StatusJSON renders the server list entry for a backend in state st.
func (g *Gateway) StatusJSON(st State) (string, error) {
	doc := statusDocument{
		Version:     statusVersion{Name: "1.18.2", Protocol: packet.ProtocolVersion},
		Players:     statusPlayers{Max: g.cfg.MaxPlayers},
		Description: textComponent{Text: fmt.Sprintf("%s\n[%s]", g.cfg.MOTD, st)},
	}

	b, err := json.Marshal(doc)
	return string(b), err
}

// serveStatus answers status requests until the client pings, as the
// vanilla client closes after its pong.
func (g *Gateway) serveStatus(c *mcwire.Conn) error {
	for {
		p, err := c.ReadPacket()
		if err != nil {
			return err
		}

		switch p := p.(type) {
		case *packet.StatusRequest:
			doc, err := g.StatusJSON(g.state())
			if err != nil {
				return err
			}
			if err := c.WritePacket(&packet.StatusResponse{JSON: doc}); err != nil {
				return err
			}

		case *packet.PingRequest:
			return c.WritePacket(&packet.PongResponse{Time: p.Time})

		default:
			return fmt.Errorf("%w: %T", mcwire.ErrUnexpectedPacket, p)
		}
	}
}

func (g *Gateway) serveLogin(s *mcwire.Session, c *mcwire.Conn) error {
	p, err := c.ReadPacket()
	if err != nil {
		return err
	}
	hello, ok := p.(*packet.Hello)
	if !ok {
		return fmt.Errorf("%w: %T", mcwire.ErrUnexpectedPacket, p)
	}
	s.Name = hello.Name

	logger := g.logger.With().Str("player", s.Name).Stringer("remote", s.RemoteAddr).Logger()

	var reason string
	switch st := g.state(); st {
	case StateStopped:
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(g.cfg.StatusTimeout)*time.Second)
		err := g.waker.Wake(ctx)
		cancel()
		if err != nil {
			logger.Error().Err(err).Msg("wake failed")
			reason = "The server could not be started. Try again later."
			break
		}
		logger.Info().Msg("woke instance")
		reason = g.cfg.StartingMessage

	case StateStarting:
		reason = g.cfg.StartingMessage

	case StateRunning:
		reason = "The server is up. Reconnect to join."

	default:
		logger.Info().Str("state", string(st)).Msg("login refused")
		reason = fmt.Sprintf("The server is %s. Try again later.", st)
	}

	doc, err := json.Marshal(textComponent{Text: reason})
	if err != nil {
		return err
	}
	return c.WritePacket(&packet.LoginDisconnect{Reason: string(doc)})
}
