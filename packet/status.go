package packet

// @gen:r,w,regserver
type StatusRequest struct{}

func (p StatusRequest) ID() int32 {
	return 0x00
}

// @gen:r,w,regserver
type PingRequest struct {
	Time int64 `field:"Long"`
}

func (p PingRequest) ID() int32 {
	return 0x01
}

// StatusResponse carries the server list JSON document.
//
// @gen:r,w,regclient
type StatusResponse struct {
	JSON string `field:"String" max:"32767"`
}

func (p StatusResponse) ID() int32 {
	return 0x00
}

// @gen:r,w,regclient
type PongResponse struct {
	Time int64 `field:"Long"`
}

func (p PongResponse) ID() int32 {
	return 0x01
}
