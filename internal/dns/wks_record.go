package dns

import (
	"net"

	"github.com/mnezerka/dnswire/internal/helpers"
)

// WKSRecord describes well-known services on a host (RFC 1035 section
// 3.4.2): an IPv4 address, an IP protocol number, and a bitmap of
// supported port numbers sized to fill out the rest of the RDATA window.
type WKSRecord struct {
	Addr     net.IP
	Protocol uint8
	Bitmap   []byte
}

// NewWKSRecord builds a WKSRecord from a plain int protocol number (as
// found in /etc/protocols or IANA's protocol registry), clamping it to the
// single byte the wire format allows.
func NewWKSRecord(addr net.IP, protocol int, bitmap []byte) *WKSRecord {
	return &WKSRecord{Addr: addr, Protocol: helpers.ClampIntToUint8(protocol), Bitmap: bitmap}
}

func (r *WKSRecord) Type() RecordType { return TypeWKS }

func (r *WKSRecord) Decode(buf *Buffer, dataSize int) {
	if dataSize < 5 {
		buf.Mark(ErrInvalidData)
		return
	}
	addr, err := buf.ReadBytes(4)
	if err != nil {
		return
	}
	proto, err := buf.ReadUint8()
	if err != nil {
		return
	}
	bitmap, err := buf.ReadBytes(dataSize - 5)
	if err != nil {
		return
	}
	r.Addr = net.IP(append([]byte(nil), addr...))
	r.Protocol = proto
	r.Bitmap = append([]byte(nil), bitmap...)
}

func (r *WKSRecord) Encode(buf *Buffer) {
	ip4 := r.Addr.To4()
	if ip4 == nil {
		buf.Mark(ErrInvalidData)
		return
	}
	if err := buf.WriteBytes(ip4); err != nil {
		return
	}
	if err := buf.WriteUint8(r.Protocol); err != nil {
		return
	}
	_ = buf.WriteBytes(r.Bitmap)
}
