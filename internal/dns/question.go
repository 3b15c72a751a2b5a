package dns

// Question represents a single entry of a DNS message's question section
// (RFC 1035 section 4.1.2): a name plus the type and class being asked
// about. Unlike a ResourceRecord it carries no TTL and no RDATA.
type Question struct {
	Name  string
	Type  uint16
	Class uint16
}

// Encode writes the question: compressed name, qtype, qclass.
func (q Question) Encode(buf *Buffer) error {
	if err := buf.WriteDomainName(q.Name, true); err != nil {
		return err
	}
	if err := buf.WriteUint16(q.Type); err != nil {
		return err
	}
	return buf.WriteUint16(q.Class)
}

// DecodeQuestion reads a question section entry from buf.
func DecodeQuestion(buf *Buffer) (Question, error) {
	name, err := buf.ReadDomainName(true)
	if err != nil {
		return Question{}, err
	}
	qtype, err := buf.ReadUint16()
	if err != nil {
		return Question{}, err
	}
	qclass, err := buf.ReadUint16()
	if err != nil {
		return Question{}, err
	}
	return Question{Name: name, Type: qtype, Class: qclass}, nil
}
