package dns

// MINFORecord gives mailbox or mail list information (RFC 1035 section
// 3.3.7): two domain names, a responsible mailbox and an error mailbox.
type MINFORecord struct {
	RMailBox string
	EMailBox string
}

func (r *MINFORecord) Type() RecordType { return TypeMINFO }

func (r *MINFORecord) Decode(buf *Buffer, dataSize int) {
	rmb, err := buf.ReadDomainName(true)
	if err != nil {
		return
	}
	emb, err := buf.ReadDomainName(true)
	if err != nil {
		return
	}
	r.RMailBox, r.EMailBox = rmb, emb
}

func (r *MINFORecord) Encode(buf *Buffer) {
	if err := buf.WriteDomainName(r.RMailBox, true); err != nil {
		return
	}
	_ = buf.WriteDomainName(r.EMailBox, true)
}
