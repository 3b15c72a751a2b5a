package dns

// Header represents a DNS message header (RFC 1035 section 4.1.1). It is
// always 12 bytes on the wire:
//   - ID: transaction identifier, echoed between query and response
//   - Flags: QR, OPCODE, AA, TC, RD, RA, Z, RCODE packed into 16 bits
//   - QDCount/ANCount/NSCount/ARCount: entry counts for the four sections
//
// The package-level Encode derives the four counts from its own section lengths;
// Header only carries them because they are what actually appears on the
// wire after a decode.
type Header struct {
	ID      uint16
	Flags   uint16
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// HeaderSize is the fixed wire size of a DNS header in bytes.
const HeaderSize = 12

// Encode writes the header's 12 bytes.
func (h Header) Encode(buf *Buffer) error {
	if err := buf.WriteUint16(h.ID); err != nil {
		return err
	}
	if err := buf.WriteUint16(h.Flags); err != nil {
		return err
	}
	if err := buf.WriteUint16(h.QDCount); err != nil {
		return err
	}
	if err := buf.WriteUint16(h.ANCount); err != nil {
		return err
	}
	if err := buf.WriteUint16(h.NSCount); err != nil {
		return err
	}
	return buf.WriteUint16(h.ARCount)
}

// DecodeHeader reads a 12-byte DNS header from buf.
func DecodeHeader(buf *Buffer) (Header, error) {
	id, err := buf.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	flags, err := buf.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	qd, err := buf.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	an, err := buf.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	ns, err := buf.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	ar, err := buf.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	return Header{ID: id, Flags: flags, QDCount: qd, ANCount: an, NSCount: ns, ARCount: ar}, nil
}

// Query returns true if the QR flag is clear (this is a query).
func (h Header) Query() bool { return h.Flags&QRFlag == 0 }

// Response returns true if the QR flag is set (this is a response).
func (h Header) Response() bool { return h.Flags&QRFlag != 0 }

// Opcode extracts the 4-bit OPCODE from the flags field.
func (h Header) Opcode() uint16 { return (h.Flags & OpcodeMask) >> 11 }

// Authoritative returns true if the AA flag is set.
func (h Header) Authoritative() bool { return h.Flags&AAFlag != 0 }

// Truncated returns true if the TC flag is set.
func (h Header) Truncated() bool { return h.Flags&TCFlag != 0 }

// RecursionDesired returns true if the RD flag is set.
func (h Header) RecursionDesired() bool { return h.Flags&RDFlag != 0 }

// RecursionAvailable returns true if the RA flag is set.
func (h Header) RecursionAvailable() bool { return h.Flags&RAFlag != 0 }

// RCode extracts the 4-bit response code from the flags field.
func (h Header) RCode() RCode { return RCodeFromFlags(h.Flags) }

// PackFlags assembles the 16-bit flags field from its components. The Z
// bits are always written zero, per RFC 1035 and this codec's invariant
// that Z is discarded on decode and zeroed on encode.
func PackFlags(qr bool, opcode uint16, aa, tc, rd, ra bool, rcode RCode) uint16 {
	var f uint16
	if qr {
		f |= QRFlag
	}
	f |= (opcode << 11) & OpcodeMask
	if aa {
		f |= AAFlag
	}
	if tc {
		f |= TCFlag
	}
	if rd {
		f |= RDFlag
	}
	if ra {
		f |= RAFlag
	}
	f |= uint16(rcode) & RCodeMask
	return f
}
