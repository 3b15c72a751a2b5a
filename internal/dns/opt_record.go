package dns

// OPTRecord is the EDNS0 pseudo-record's RDATA (RFC 6891 section 6.1.2).
// The OPT record's NAME/CLASS/TTL fields are repurposed by the surrounding
// ResourceRecord envelope (root name, sender UDP size, extended RCODE and
// flags); this codec does not interpret those repurposed fields and stores
// the RDATA itself as an opaque options blob rather than parsing individual
// EDNS options.
type OPTRecord struct {
	Data []byte
}

func (r *OPTRecord) Type() RecordType { return TypeOPT }

func (r *OPTRecord) Decode(buf *Buffer, dataSize int) {
	b, err := buf.ReadBytes(dataSize)
	if err != nil {
		return
	}
	r.Data = append([]byte(nil), b...)
}

func (r *OPTRecord) Encode(buf *Buffer) {
	_ = buf.WriteBytes(r.Data)
}
