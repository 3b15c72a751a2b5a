package dns

// TXTRecord holds one or more character-strings (RFC 1035 section 3.3.14).
// Unlike most variants, TXT has no field that marks its own end: it simply
// reads character-strings back to back until the RDLENGTH window reserved
// for it is exhausted.
type TXTRecord struct {
	Strings []string
}

func (r *TXTRecord) Type() RecordType { return TypeTXT }

func (r *TXTRecord) Decode(buf *Buffer, dataSize int) {
	end := buf.Position() + dataSize
	var strs []string
	for buf.Position() < end {
		s, err := buf.ReadCharString()
		if err != nil {
			return
		}
		strs = append(strs, s)
	}
	r.Strings = strs
}

func (r *TXTRecord) Encode(buf *Buffer) {
	for _, s := range r.Strings {
		if err := buf.WriteCharString(s); err != nil {
			return
		}
	}
}
