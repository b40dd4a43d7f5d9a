package core

// Packet is one unit of coded bytes for exactly one stream, timestamped in
// its own Timebase. A Packet is immutable after construction by
// convention: no stage retains or mutates another's Packet.Bytes buffer.
type Packet struct {
	Bytes       []byte
	Pts         int64
	Dts         int64 // defaults to Pts if not set explicitly; see DtsOrPts
	HasDts      bool
	Timebase    Timebase
	StreamIndex int
	Keyframe    bool
}

// Size returns len(Bytes).
func (p Packet) Size() int { return len(p.Bytes) }

// DtsOrPts returns Dts if it was explicitly set, otherwise Pts.
func (p Packet) DtsOrPts() int64 {
	if p.HasDts {
		return p.Dts
	}
	return p.Pts
}
