// Package dns implements a DNS wire-format codec: decoding and encoding of
// DNS protocol messages between their on-the-wire byte representation and a
// structured in-memory form.
//
// Standards Compliance:
//
// This package implements DNS wire-format features from the following RFCs:
//
//   - RFC 1035: Domain Names - Implementation and Specification (core format)
//   - RFC 2782: DNS SRV records
//   - RFC 3403: DNS NAPTR records
//   - RFC 3596: DNS Extensions to Support IPv6 (AAAA records)
//   - RFC 6891: Extension Mechanisms for DNS (EDNS0, OPT pseudo-records)
//
// The package never opens sockets, never logs, and never retains state
// across calls beyond what a single Buffer or Message holds. Callers own all
// I/O; resolver logic, caching, zone parsing, and DNSSEC validation are out
// of scope.
//
// Error Handling:
//
// Decode/encode failures are represented as a sticky status on the Buffer
// (see Buffer.Status), not as exceptions or per-field errors. Every sentinel
// below wraps ErrDNSError, so callers can use errors.Is(err, ErrDNSError) to
// recognize any wire-format violation without enumerating the specific kind.
package dns

import (
	"errors"
	"fmt"
)

// ErrDNSError is the root sentinel for all DNS wire-format violations.
// Every error a Buffer can latch wraps this, so errors.Is(err, ErrDNSError)
// recognizes any of them.
var ErrDNSError = errors.New("dns wire error")

var (
	// ErrBufferOverflow means a read or write tried to move the cursor past
	// the buffer's capacity.
	ErrBufferOverflow = fmt.Errorf("%w: buffer overflow", ErrDNSError)

	// ErrInvalidData means a length-framed field (most often an RDATA
	// RDLENGTH window) did not match the number of bytes its decoder
	// actually consumed.
	ErrInvalidData = fmt.Errorf("%w: invalid data", ErrDNSError)

	// ErrLabelCompressionLoop means a chain of compression pointers
	// revisited an offset already seen while decoding the same name.
	ErrLabelCompressionLoop = fmt.Errorf("%w: label compression loop", ErrDNSError)

	// ErrLabelCompressionDisallowed means a compression pointer appeared
	// while decoding a name in a context that forbids compression (e.g. a
	// NAPTR replacement, per RFC 3403 section 3).
	ErrLabelCompressionDisallowed = fmt.Errorf("%w: label compression disallowed", ErrDNSError)

	// ErrLabelTooLong means a label exceeded MaxLabelLen (63) octets.
	ErrLabelTooLong = fmt.Errorf("%w: label too long", ErrDNSError)

	// ErrDomainTooLong means an assembled domain name exceeded
	// MaxDomainLen (255) octets.
	ErrDomainTooLong = fmt.Errorf("%w: domain name too long", ErrDNSError)

	// ErrMessageTooLong means a top-level input exceeded MaxMessageLen
	// (512) bytes.
	ErrMessageTooLong = fmt.Errorf("%w: message too long", ErrDNSError)
)
