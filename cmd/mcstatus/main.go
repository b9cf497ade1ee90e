// Command mcstatus prints the server list entry of a server and the round
// trip time of a status ping.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gstoney/mcwire"
	"github.com/gstoney/mcwire/packet"
)

func main() {
	addr := flag.String("addr", "localhost:25565", "server address (host:port)")
	proto := flag.Int("proto", packet.ProtocolVersion, "protocol version")
	timeout := flag.Duration("timeout", 5*time.Second, "dial and read timeout")
	verbose := flag.Bool("v", false, "log protocol steps")

	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(*addr, int32(*proto), *timeout); err != nil {
		log.Fatal().Err(err).Str("addr", *addr).Msg("status query failed")
	}
}

func run(addr string, proto int32, timeout time.Duration) error {
	hostname, portstr, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	port, err := strconv.ParseUint(portstr, 10, 16)
	if err != nil {
		return fmt.Errorf("port %q: %w", portstr, err)
	}

	log.Debug().Str("addr", addr).Msg("dialing")

	nc, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return err
	}
	defer nc.Close()
	nc.SetDeadline(time.Now().Add(timeout))

	c := mcwire.NewConn(nc, packet.Clientbound, mcwire.DefaultTransportConfig())

	err = c.WritePacket(&packet.ClientIntention{
		ProtocolVersion: proto,
		HostName:        hostname,
		Port:            uint16(port),
		Intention:       packet.Status,
	})
	if err != nil {
		return err
	}
	c.SetPhase(packet.Status)

	if err := c.WritePacket(&packet.StatusRequest{}); err != nil {
		return err
	}
	p, err := c.ReadPacket()
	if err != nil {
		return err
	}
	resp, ok := p.(*packet.StatusResponse)
	if !ok {
		return fmt.Errorf("%w: %T", mcwire.ErrUnexpectedPacket, p)
	}
	log.Debug().Int("bytes", len(resp.JSON)).Msg("status response")

	sent := time.Now()
	if err := c.WritePacket(&packet.PingRequest{Time: sent.UnixMilli()}); err != nil {
		return err
	}
	p, err = c.ReadPacket()
	if err != nil {
		return err
	}
	if _, ok := p.(*packet.PongResponse); !ok {
		return fmt.Errorf("%w: %T", mcwire.ErrUnexpectedPacket, p)
	}

	fmt.Println(resp.JSON)
	fmt.Printf("latency: %s\n", time.Since(sent).Round(time.Millisecond))
	return nil
}
