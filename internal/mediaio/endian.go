package mediaio

import (
	"encoding/binary"
	"math"
)

// Reader primitives read a fixed-width value from the front of buf. Callers
// are responsible for ensuring buf is long enough; ReadFull on the
// MediaReader is the usual way to obtain it.

func ReadUint16LE(buf []byte) uint16 { return binary.LittleEndian.Uint16(buf) }
func ReadUint16BE(buf []byte) uint16 { return binary.BigEndian.Uint16(buf) }
func ReadUint32LE(buf []byte) uint32 { return binary.LittleEndian.Uint32(buf) }
func ReadUint32BE(buf []byte) uint32 { return binary.BigEndian.Uint32(buf) }
func ReadUint64LE(buf []byte) uint64 { return binary.LittleEndian.Uint64(buf) }
func ReadUint64BE(buf []byte) uint64 { return binary.BigEndian.Uint64(buf) }

func ReadInt16LE(buf []byte) int16 { return int16(ReadUint16LE(buf)) }
func ReadInt16BE(buf []byte) int16 { return int16(ReadUint16BE(buf)) }
func ReadInt32LE(buf []byte) int32 { return int32(ReadUint32LE(buf)) }
func ReadInt32BE(buf []byte) int32 { return int32(ReadUint32BE(buf)) }
func ReadInt64LE(buf []byte) int64 { return int64(ReadUint64LE(buf)) }
func ReadInt64BE(buf []byte) int64 { return int64(ReadUint64BE(buf)) }

func ReadFloat32LE(buf []byte) float32 { return math.Float32frombits(ReadUint32LE(buf)) }
func ReadFloat32BE(buf []byte) float32 { return math.Float32frombits(ReadUint32BE(buf)) }
func ReadFloat64LE(buf []byte) float64 { return math.Float64frombits(ReadUint64LE(buf)) }
func ReadFloat64BE(buf []byte) float64 { return math.Float64frombits(ReadUint64BE(buf)) }

// Writer primitives append a fixed-width value's bytes to buf and return
// the extended slice, mirroring the append-style writers the container
// layer composes headers with.

func PutUint16LE(buf []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(buf, v)
}
func PutUint16BE(buf []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(buf, v)
}
func PutUint32LE(buf []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, v)
}
func PutUint32BE(buf []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(buf, v)
}
func PutUint64LE(buf []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(buf, v)
}
func PutUint64BE(buf []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(buf, v)
}

func PutInt16LE(buf []byte, v int16) []byte { return PutUint16LE(buf, uint16(v)) }
func PutInt16BE(buf []byte, v int16) []byte { return PutUint16BE(buf, uint16(v)) }
func PutInt32LE(buf []byte, v int32) []byte { return PutUint32LE(buf, uint32(v)) }
func PutInt32BE(buf []byte, v int32) []byte { return PutUint32BE(buf, uint32(v)) }
func PutInt64LE(buf []byte, v int64) []byte { return PutUint64LE(buf, uint64(v)) }
func PutInt64BE(buf []byte, v int64) []byte { return PutUint64BE(buf, uint64(v)) }

func PutFloat32LE(buf []byte, v float32) []byte { return PutUint32LE(buf, math.Float32bits(v)) }
func PutFloat32BE(buf []byte, v float32) []byte { return PutUint32BE(buf, math.Float32bits(v)) }
func PutFloat64LE(buf []byte, v float64) []byte { return PutUint64LE(buf, math.Float64bits(v)) }
func PutFloat64BE(buf []byte, v float64) []byte { return PutUint64BE(buf, math.Float64bits(v)) }
