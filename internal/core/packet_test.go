package core

import "testing"

func TestPacketSize(t *testing.T) {
	p := Packet{Bytes: []byte{1, 2, 3, 4, 5}}
	if p.Size() != 5 {
		t.Errorf("Size() = %d, want 5", p.Size())
	}
}

func TestPacketDtsOrPtsFallsBackToPts(t *testing.T) {
	p := Packet{Pts: 10}
	if got := p.DtsOrPts(); got != 10 {
		t.Errorf("DtsOrPts() = %d, want 10 (Pts fallback)", got)
	}
}

func TestPacketDtsOrPtsUsesDtsWhenSet(t *testing.T) {
	p := Packet{Pts: 10, Dts: 7, HasDts: true}
	if got := p.DtsOrPts(); got != 7 {
		t.Errorf("DtsOrPts() = %d, want 7", got)
	}
}
