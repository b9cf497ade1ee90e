package packet

// ClientIntention opens every connection and names the phase the client
// wants next.
//
// @gen:r,w,regserver
type ClientIntention struct {
	ProtocolVersion int32  `field:"Int,var"`
	HostName        string `field:"String" max:"255"`
	Port            uint16 `field:"UnsignedShort"`
	Intention       Phase  `field:"Phase"`
}

func (p ClientIntention) ID() int32 {
	return 0x00
}
