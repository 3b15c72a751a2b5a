package dns

// NAPTRRecord is a Naming Authority Pointer (RFC 3403 section 4.1): two
// 16-bit ordering fields, three character-strings (flags, services,
// regexp), and a replacement domain name. The replacement name is written
// and read uncompressed, unlike most other name-bearing RDATA.
type NAPTRRecord struct {
	Order       uint16
	Preference  uint16
	Flags       string
	Services    string
	Regexp      string
	Replacement string
}

func (r *NAPTRRecord) Type() RecordType { return TypeNAPTR }

func (r *NAPTRRecord) Decode(buf *Buffer, dataSize int) {
	order, err := buf.ReadUint16()
	if err != nil {
		return
	}
	pref, err := buf.ReadUint16()
	if err != nil {
		return
	}
	flags, err := buf.ReadCharString()
	if err != nil {
		return
	}
	services, err := buf.ReadCharString()
	if err != nil {
		return
	}
	regexp, err := buf.ReadCharString()
	if err != nil {
		return
	}
	replacement, err := buf.ReadDomainName(false)
	if err != nil {
		return
	}
	r.Order, r.Preference = order, pref
	r.Flags, r.Services, r.Regexp = flags, services, regexp
	r.Replacement = replacement
}

func (r *NAPTRRecord) Encode(buf *Buffer) {
	if err := buf.WriteUint16(r.Order); err != nil {
		return
	}
	if err := buf.WriteUint16(r.Preference); err != nil {
		return
	}
	if err := buf.WriteCharString(r.Flags); err != nil {
		return
	}
	if err := buf.WriteCharString(r.Services); err != nil {
		return
	}
	if err := buf.WriteCharString(r.Regexp); err != nil {
		return
	}
	_ = buf.WriteDomainName(r.Replacement, false)
}
