package dns

import (
	"github.com/mnezerka/dnswire/internal/helpers"
)

// RData is the contract every resource-record payload shape implements. The
// record type tag, decode, and encode are all a variant knows about itself;
// everything about framing (RDLENGTH, the owning name/class/TTL) belongs to
// ResourceRecord, not to the variant.
//
// Decode and Encode report failure through buf's sticky status rather than
// a return value, exactly like every other Buffer-driven operation in this
// package: a variant that hits EOF mid-decode just stops, and the caller
// checks buf.Status() once, at the end.
type RData interface {
	// Type returns this variant's DNS record type tag.
	Type() RecordType

	// Decode reads this variant's RDATA from buf. dataSize is the RDLENGTH
	// window the envelope reserved; the name-only, SOA, MX, HINFO, MINFO
	// and NAPTR variants ignore it because their own framing (a domain
	// name's terminator, a fixed field count) already determines their
	// length. A and AAAA check it against their fixed size; TXT, WKS, SRV,
	// OPT, and Unknown use it directly.
	Decode(buf *Buffer, dataSize int)

	// Encode writes this variant's RDATA to buf.
	Encode(buf *Buffer)
}

// newRData constructs the zero-value RData variant for a record type tag,
// or an Unknown if the tag isn't one of the closed set this codec
// understands. This is a pure function: the mapping never depends on
// anything but rt.
func newRData(rt RecordType) RData {
	switch rt {
	case TypeA:
		return &ARecord{}
	case TypeAAAA:
		return &AAAARecord{}
	case TypeNS:
		return &NameRecord{RRType: TypeNS}
	case TypeMD:
		return &NameRecord{RRType: TypeMD}
	case TypeMF:
		return &NameRecord{RRType: TypeMF}
	case TypeCNAME:
		return &NameRecord{RRType: TypeCNAME}
	case TypeMB:
		return &NameRecord{RRType: TypeMB}
	case TypeMG:
		return &NameRecord{RRType: TypeMG}
	case TypeMR:
		return &NameRecord{RRType: TypeMR}
	case TypePTR:
		return &NameRecord{RRType: TypePTR}
	case TypeSOA:
		return &SOARecord{}
	case TypeMX:
		return &MXRecord{}
	case TypeTXT:
		return &TXTRecord{}
	case TypeHINFO:
		return &HINFORecord{}
	case TypeMINFO:
		return &MINFORecord{}
	case TypeWKS:
		return &WKSRecord{}
	case TypeNAPTR:
		return &NAPTRRecord{}
	case TypeSRV:
		return &SRVRecord{}
	case TypeOPT:
		return &OPTRecord{}
	default:
		return &UnknownRecord{RRType: rt}
	}
}

// ResourceRecord is the RR envelope (RFC 1035 section 3.2.1): an owner
// name, type, class, TTL, and a type-specific RData payload. The RR
// exclusively owns its RData; nothing else may reference it.
type ResourceRecord struct {
	Name  string
	Type  RecordType
	Class uint16
	TTL   uint32
	RData RData
}

// DecodeResourceRecord reads one resource record from buf: the owner name,
// the fixed 10-byte type/class/TTL/RDLENGTH header, and then RDLENGTH bytes
// dispatched to the matching RData variant's Decode.
//
// If the variant's Decode does not consume exactly RDLENGTH bytes, the
// buffer is marked ErrInvalidData even though the variant itself may not
// have failed -- the framing contract, not the variant, was violated.
func DecodeResourceRecord(buf *Buffer) (ResourceRecord, error) {
	name, err := buf.ReadDomainName(true)
	if err != nil {
		return ResourceRecord{}, err
	}
	rtype, err := buf.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}
	class, err := buf.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}
	ttl, err := buf.ReadUint32()
	if err != nil {
		return ResourceRecord{}, err
	}
	rdlen, err := buf.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}

	rr := ResourceRecord{Name: name, Type: RecordType(rtype), Class: class, TTL: ttl}
	rr.RData = newRData(rr.Type)

	if rdlen == 0 {
		// Still constructed above, per spec: a zero-length RDATA window
		// skips decoding entirely rather than erroring.
		return rr, nil
	}

	expectedEnd := buf.Position() + int(rdlen)
	rr.RData.Decode(buf, int(rdlen))
	if buf.Status() != nil {
		return rr, buf.Status()
	}
	if buf.Position() != expectedEnd {
		buf.Mark(ErrInvalidData)
		return rr, buf.Status()
	}
	return rr, nil
}

// Encode writes the resource record: owner name, type, class, TTL, then
// the RData payload framed by a 16-bit RDLENGTH that is back-patched once
// the payload's actual size is known.
func (rr ResourceRecord) Encode(buf *Buffer) error {
	if err := buf.WriteDomainName(rr.Name, true); err != nil {
		return err
	}
	if err := buf.WriteUint16(uint16(rr.Type)); err != nil {
		return err
	}
	if err := buf.WriteUint16(rr.Class); err != nil {
		return err
	}
	if err := buf.WriteUint32(rr.TTL); err != nil {
		return err
	}

	lenPos := buf.Position()
	if err := buf.WriteUint16(0); err != nil {
		return err
	}
	if rr.RData != nil {
		rr.RData.Encode(buf)
		if buf.Status() != nil {
			return buf.Status()
		}
	}
	end := buf.Position()
	rdlen := end - lenPos - 2

	if err := buf.Seek(lenPos); err != nil {
		return err
	}
	if err := buf.WriteUint16(helpers.ClampIntToUint16(rdlen)); err != nil {
		return err
	}
	return buf.Seek(end)
}
