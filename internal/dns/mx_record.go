package dns

// MXRecord identifies a mail exchange for the owner domain (RFC 1035
// section 3.3.9): a 16-bit preference followed by a domain name.
type MXRecord struct {
	Preference uint16
	Exchange   string
}

func (r *MXRecord) Type() RecordType { return TypeMX }

func (r *MXRecord) Decode(buf *Buffer, dataSize int) {
	pref, err := buf.ReadUint16()
	if err != nil {
		return
	}
	exchange, err := buf.ReadDomainName(true)
	if err != nil {
		return
	}
	r.Preference = pref
	r.Exchange = exchange
}

func (r *MXRecord) Encode(buf *Buffer) {
	if err := buf.WriteUint16(r.Preference); err != nil {
		return
	}
	_ = buf.WriteDomainName(r.Exchange, true)
}
