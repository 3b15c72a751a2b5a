package dns

// UnknownRecord stores the RDATA of any record type outside this codec's
// closed set verbatim, byte-for-byte, with no interpretation. RRType
// preserves the numeric tag that was actually on the wire so a re-encode
// round-trips it unchanged.
type UnknownRecord struct {
	RRType RecordType
	Data   []byte
}

func (r *UnknownRecord) Type() RecordType { return r.RRType }

func (r *UnknownRecord) Decode(buf *Buffer, dataSize int) {
	b, err := buf.ReadBytes(dataSize)
	if err != nil {
		return
	}
	r.Data = append([]byte(nil), b...)
}

func (r *UnknownRecord) Encode(buf *Buffer) {
	_ = buf.WriteBytes(r.Data)
}
