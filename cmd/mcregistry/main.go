// Command mcregistry prints the packet id tables.
package main

import (
	"flag"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/gstoney/mcwire/packet"
)

func main() {
	phaseName := flag.String("phase", "", "only print this phase (handshake, status, login, game)")
	flag.Parse()

	phases := packet.Phases
	if *phaseName != "" {
		phases = nil
		for _, p := range packet.Phases {
			if strings.EqualFold(p.String(), *phaseName) {
				phases = append(phases, p)
			}
		}
		if len(phases) == 0 {
			fmt.Fprintf(os.Stderr, "unknown phase %q\n", *phaseName)
			os.Exit(2)
		}
	}

	fmt.Printf("Protocol %d\n\n", packet.ProtocolVersion)

	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"Phase", "Direction", "ID", "Packet", "Fields"})
	tw.SetBorder(true)
	tw.SetAutoWrapText(false)

	for _, phase := range phases {
		for _, dir := range []packet.Direction{packet.Serverbound, packet.Clientbound} {
			for _, id := range packet.IDs(phase, dir) {
				p, err := packet.Lookup(phase, dir, id)
				if err != nil {
					continue
				}
				typ := reflect.TypeOf(p).Elem()

				tw.Append([]string{
					phase.String(),
					dir.String(),
					fmt.Sprintf("0x%02X", id),
					typ.Name(),
					fmt.Sprintf("%d", typ.NumField()),
				})
			}
		}
	}

	tw.Render()
}
