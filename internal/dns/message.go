package dns

import "github.com/mnezerka/dnswire/internal/helpers"

// MaxQuestions and MaxRRPerSection bound how much a Decode will
// pre-allocate for a single section based on the header's declared count,
// independent of how many bytes the message actually carries. A header
// claiming tens of thousands of records in a 512-byte message cannot
// possibly be honest; capping the pre-allocation keeps a malformed count
// from driving a large allocation before the section loop ever reads a
// byte and fails on its own.
const (
	MaxQuestions    = 64
	MaxRRPerSection = 128
)

// Message is a complete DNS message (RFC 1035 section 4.1): a header and
// four sections -- questions, answers, authorities, and additionals.
type Message struct {
	Header      Header
	Questions   []Question
	Answers     []ResourceRecord
	Authorities []ResourceRecord
	Additionals []ResourceRecord
}

// Decode parses a complete message out of the first size bytes of msg.
// size must not exceed MaxMessageLen or len(msg); otherwise Decode returns
// ErrMessageTooLong before anything else is read.
//
// Decode succeeds only if every section parses cleanly and the cursor ends
// up exactly at size -- trailing garbage or a short read are both errors,
// matching the source's requirement that a decoded message account for
// every byte it was given.
func Decode(msg []byte, size int) (Message, error) {
	if size > MaxMessageLen || size > len(msg) {
		return Message{}, ErrMessageTooLong
	}
	buf := NewBuffer(msg[:size])

	h, err := DecodeHeader(buf)
	if err != nil {
		return Message{}, err
	}
	m := Message{Header: h}

	m.Questions = make([]Question, 0, helpers.ClampInt(int(h.QDCount), 0, MaxQuestions))
	for i := uint16(0); i < h.QDCount; i++ {
		q, err := DecodeQuestion(buf)
		if err != nil {
			return Message{}, err
		}
		m.Questions = append(m.Questions, q)
	}

	m.Answers, err = decodeRRSection(buf, h.ANCount)
	if err != nil {
		return Message{}, err
	}
	m.Authorities, err = decodeRRSection(buf, h.NSCount)
	if err != nil {
		return Message{}, err
	}
	m.Additionals, err = decodeRRSection(buf, h.ARCount)
	if err != nil {
		return Message{}, err
	}

	if buf.Position() != size {
		return Message{}, ErrInvalidData
	}
	return m, nil
}

func decodeRRSection(buf *Buffer, count uint16) ([]ResourceRecord, error) {
	rrs := make([]ResourceRecord, 0, helpers.ClampInt(int(count), 0, MaxRRPerSection))
	for i := uint16(0); i < count; i++ {
		rr, err := DecodeResourceRecord(buf)
		if err != nil {
			return nil, err
		}
		rrs = append(rrs, rr)
	}
	return rrs, nil
}

// Encode writes m into out, deriving the header's four section counts
// from the actual lengths of m's section slices rather than trusting
// m.Header's counts. It returns the number of bytes written.
//
// Encode never writes more than MaxMessageLen bytes, whatever len(out) is.
// It fails with ErrBufferOverflow if the message does not fit in out or
// would exceed MaxMessageLen; it never returns ErrMessageTooLong.
func Encode(m Message, out []byte) (int, error) {
	window := out
	if len(window) > MaxMessageLen {
		window = window[:MaxMessageLen]
	}
	buf := NewBuffer(window)

	h := m.Header
	h.QDCount = helpers.ClampIntToUint16(len(m.Questions))
	h.ANCount = helpers.ClampIntToUint16(len(m.Answers))
	h.NSCount = helpers.ClampIntToUint16(len(m.Authorities))
	h.ARCount = helpers.ClampIntToUint16(len(m.Additionals))

	if err := h.Encode(buf); err != nil {
		return 0, err
	}
	for _, q := range m.Questions {
		if err := q.Encode(buf); err != nil {
			return 0, err
		}
	}
	if err := encodeRRSection(buf, m.Answers); err != nil {
		return 0, err
	}
	if err := encodeRRSection(buf, m.Authorities); err != nil {
		return 0, err
	}
	if err := encodeRRSection(buf, m.Additionals); err != nil {
		return 0, err
	}

	return buf.Position(), nil
}

func encodeRRSection(buf *Buffer, rrs []ResourceRecord) error {
	for _, rr := range rrs {
		if err := rr.Encode(buf); err != nil {
			return err
		}
	}
	return nil
}
