package dns

// DNS header flags and masks (RFC 1035 Section 4.1.1).
//
// The DNS header contains a 16-bit flags field with the following layout:
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA|   Z   |   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
//
// Bit positions (from MSB):
//   - Bit 15 (0x8000): QR - Query (0) or Response (1)
//   - Bits 14-11 (0x7800): OPCODE - Operation type (0=Query, 1=IQuery, 2=Status)
//   - Bit 10 (0x0400): AA - Authoritative Answer
//   - Bit 9 (0x0200): TC - Truncation (message was truncated)
//   - Bit 8 (0x0100): RD - Recursion Desired
//   - Bit 7 (0x0080): RA - Recursion Available
//   - Bits 6-4 (0x0070): Z - Reserved, must be zero on encode
//   - Bits 3-0 (0x000F): RCODE - Response code
const (
	QRFlag     uint16 = 0x8000 // Query/Response: 1 = response, 0 = query
	OpcodeMask uint16 = 0x7800 // Bits 14-11: operation type (use >> 11 to extract)
	AAFlag     uint16 = 0x0400 // Authoritative Answer
	TCFlag     uint16 = 0x0200 // Truncation: message was truncated
	RDFlag     uint16 = 0x0100 // Recursion Desired
	RAFlag     uint16 = 0x0080 // Recursion Available
	ZMask      uint16 = 0x0070 // Bits 6-4: reserved, zero on encode
	RCodeMask  uint16 = 0x000F // Bits 3-0: response code
)

// RecordType represents a DNS resource record type (RFC 1035 section 3.2.2,
// plus the RFC 3596/2782/3403/6891 extensions this codec understands).
//
// This is the closed set of RDATA variants the codec dispatches on; any
// other numeric type decodes as Unknown (opaque, verbatim) rather than
// failing.
type RecordType uint16

const (
	TypeA     RecordType = 1  // a host address
	TypeNS    RecordType = 2  // an authoritative name server
	TypeMD    RecordType = 3  // a mail destination (obsolete, use MX)
	TypeMF    RecordType = 4  // a mail forwarder (obsolete, use MX)
	TypeCNAME RecordType = 5  // the canonical name for an alias
	TypeSOA   RecordType = 6  // marks the start of a zone of authority
	TypeMB    RecordType = 7  // a mailbox domain name (experimental)
	TypeMG    RecordType = 8  // a mail group member (experimental)
	TypeMR    RecordType = 9  // a mail rename domain name (experimental)
	TypeWKS   RecordType = 11 // a well known service description
	TypePTR   RecordType = 12 // a domain name pointer
	TypeHINFO RecordType = 13 // host information
	TypeMINFO RecordType = 14 // mailbox or mail list information
	TypeMX    RecordType = 15 // mail exchange
	TypeTXT   RecordType = 16 // text strings
	TypeAAAA  RecordType = 28 // IPv6 address (RFC 3596)
	TypeSRV   RecordType = 33 // service location (RFC 2782)
	TypeNAPTR RecordType = 35 // naming authority pointer (RFC 3403)
	TypeOPT   RecordType = 41 // EDNS0 pseudo-record (RFC 6891)
)

// RecordClass represents a DNS resource record class (RFC 1035 section 3.2.4).
type RecordClass uint16

const (
	ClassIN RecordClass = 1 // the Internet
	ClassCS RecordClass = 2 // the CSNET class (obsolete)
	ClassCH RecordClass = 3 // the CHAOS class
	ClassHS RecordClass = 4 // Hesiod
)

// RCode represents a DNS response code (RFC 1035 section 4.1.1).
type RCode uint16

const (
	RCodeNoError  RCode = 0 // no error
	RCodeFormErr  RCode = 1 // format error: query malformed
	RCodeServFail RCode = 2 // server failure: internal error
	RCodeNXDomain RCode = 3 // non-existent domain
	RCodeNotImp   RCode = 4 // not implemented: unsupported query type
	RCodeRefused  RCode = 5 // query refused by policy
)

// RCodeFromFlags extracts the response code from the DNS header flags.
// The RCODE occupies the low 4 bits of the flags field.
func RCodeFromFlags(flags uint16) RCode {
	return RCode(flags & RCodeMask)
}
