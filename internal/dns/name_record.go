package dns

// NameRecord covers every RDATA shape that is nothing but a single domain
// name: CNAME, NS, PTR, and the experimental mailbox types MB, MD, MF, MG,
// MR (RFC 1035 sections 3.3.1-3.3.12). RRType records which of those this
// particular instance is, since the wire shape is identical across all of
// them.
type NameRecord struct {
	RRType RecordType
	Name   string
}

func (r *NameRecord) Type() RecordType { return r.RRType }

// Decode reads the target name. Per the source this codec is wire-compatible
// with, these names are read with compression allowed even though RFC 1035
// only requires it for NS/CNAME/PTR; MB/MD/MF/MG/MR follow the same reader.
func (r *NameRecord) Decode(buf *Buffer, dataSize int) {
	name, err := buf.ReadDomainName(true)
	if err != nil {
		return
	}
	r.Name = name
}

func (r *NameRecord) Encode(buf *Buffer) {
	_ = buf.WriteDomainName(r.Name, true)
}
