package dns

import "strings"

// SRVRecord locates a service (RFC 2782): priority, weight, and port
// followed by a target host.
//
// The target is read as the length-prefixed strings that fill the rest of
// the RDLENGTH window, joined with "." and with leading and trailing dots
// trimmed; no byte is interpreted as a compression pointer -- this departs
// from RFC 2782's "target is a domain name" wording, but matches the wire
// behavior of the source this codec is compatible with. Encode writes
// Target split on "." as length-prefixed labels ending in a zero byte,
// with no compression.
type SRVRecord struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (r *SRVRecord) Type() RecordType { return TypeSRV }

func (r *SRVRecord) Decode(buf *Buffer, dataSize int) {
	start := buf.Position()
	priority, err := buf.ReadUint16()
	if err != nil {
		return
	}
	weight, err := buf.ReadUint16()
	if err != nil {
		return
	}
	port, err := buf.ReadUint16()
	if err != nil {
		return
	}
	target, err := readConcatenatedLabels(buf, start+dataSize)
	if err != nil {
		return
	}
	r.Priority, r.Weight, r.Port = priority, weight, port
	r.Target = target
}

func (r *SRVRecord) Encode(buf *Buffer) {
	if err := buf.WriteUint16(r.Priority); err != nil {
		return
	}
	if err := buf.WriteUint16(r.Weight); err != nil {
		return
	}
	if err := buf.WriteUint16(r.Port); err != nil {
		return
	}
	wire, _, err := encodeLabels(strings.TrimSuffix(r.Target, "."))
	if err != nil {
		buf.Mark(err)
		return
	}
	_ = buf.WriteBytes(wire)
}

// readConcatenatedLabels reads character-strings until the cursor reaches
// end, joins them with "." and trims leading and trailing dots (the
// terminating zero-length label reads as an empty string). No length byte
// is interpreted as a compression pointer.
func readConcatenatedLabels(buf *Buffer, end int) (string, error) {
	var labels []string
	for buf.Position() < end {
		s, err := buf.ReadCharString()
		if err != nil {
			return "", err
		}
		labels = append(labels, s)
	}
	return strings.Trim(strings.Join(labels, "."), "."), nil
}
