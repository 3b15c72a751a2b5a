package dns

// SOARecord marks the start of a zone of authority (RFC 1035 section
// 3.3.13): two domain names followed by five 32-bit timing fields.
type SOARecord struct {
	MName   string
	RName   string
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (r *SOARecord) Type() RecordType { return TypeSOA }

func (r *SOARecord) Decode(buf *Buffer, dataSize int) {
	mname, err := buf.ReadDomainName(true)
	if err != nil {
		return
	}
	rname, err := buf.ReadDomainName(true)
	if err != nil {
		return
	}
	serial, err := buf.ReadUint32()
	if err != nil {
		return
	}
	refresh, err := buf.ReadUint32()
	if err != nil {
		return
	}
	retry, err := buf.ReadUint32()
	if err != nil {
		return
	}
	expire, err := buf.ReadUint32()
	if err != nil {
		return
	}
	minimum, err := buf.ReadUint32()
	if err != nil {
		return
	}
	r.MName, r.RName = mname, rname
	r.Serial, r.Refresh, r.Retry, r.Expire, r.Minimum = serial, refresh, retry, expire, minimum
}

func (r *SOARecord) Encode(buf *Buffer) {
	if err := buf.WriteDomainName(r.MName, true); err != nil {
		return
	}
	if err := buf.WriteDomainName(r.RName, true); err != nil {
		return
	}
	if err := buf.WriteUint32(r.Serial); err != nil {
		return
	}
	if err := buf.WriteUint32(r.Refresh); err != nil {
		return
	}
	if err := buf.WriteUint32(r.Retry); err != nil {
		return
	}
	if err := buf.WriteUint32(r.Expire); err != nil {
		return
	}
	_ = buf.WriteUint32(r.Minimum)
}
