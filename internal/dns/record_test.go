package dns

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceRecordRoundTripA(t *testing.T) {
	rr := ResourceRecord{
		Name:  "www.l.google.com",
		Type:  TypeA,
		Class: uint16(ClassIN),
		TTL:   5,
		RData: &ARecord{Addr: net.IPv4(66, 249, 91, 104)},
	}
	buf := NewBuffer(make([]byte, 64))
	require.NoError(t, rr.Encode(buf))
	require.NoError(t, buf.Seek(0))

	got, err := DecodeResourceRecord(buf)
	require.NoError(t, err)
	assert.Equal(t, rr.Name, got.Name)
	assert.Equal(t, rr.Type, got.Type)
	assert.Equal(t, rr.TTL, got.TTL)
	a, ok := got.RData.(*ARecord)
	require.True(t, ok)
	assert.True(t, a.Addr.Equal(rr.RData.(*ARecord).Addr))
}

func TestResourceRecordRoundTripCNAME(t *testing.T) {
	rr := ResourceRecord{
		Name:  "www.google.com",
		Type:  TypeCNAME,
		Class: uint16(ClassIN),
		TTL:   5,
		RData: &NameRecord{RRType: TypeCNAME, Name: "www.l.google.com"},
	}
	buf := NewBuffer(make([]byte, 64))
	require.NoError(t, rr.Encode(buf))
	require.NoError(t, buf.Seek(0))

	got, err := DecodeResourceRecord(buf)
	require.NoError(t, err)
	n, ok := got.RData.(*NameRecord)
	require.True(t, ok)
	assert.Equal(t, "www.l.google.com", n.Name)
}

func TestResourceRecordUnknownTypePreservesBytes(t *testing.T) {
	rr := ResourceRecord{
		Name:  "example.com",
		Type:  RecordType(9999),
		Class: uint16(ClassIN),
		TTL:   60,
		RData: &UnknownRecord{RRType: RecordType(9999), Data: []byte{1, 2, 3, 4}},
	}
	buf := NewBuffer(make([]byte, 64))
	require.NoError(t, rr.Encode(buf))
	require.NoError(t, buf.Seek(0))

	got, err := DecodeResourceRecord(buf)
	require.NoError(t, err)
	u, ok := got.RData.(*UnknownRecord)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3, 4}, u.Data)
}

func TestResourceRecordTruncatedFails(t *testing.T) {
	msg := []byte{0, 1, 2, 3, 4, 0} // root name, then not enough bytes for type/class/TTL/RDLENGTH
	buf := NewBuffer(msg)
	_, err := DecodeResourceRecord(buf)
	require.Error(t, err)
}

func TestResourceRecordRDLengthMismatchIsInvalidData(t *testing.T) {
	// An A record's RDATA is exactly 4 bytes, but RDLENGTH claims 5 -- the
	// A variant rejects any window other than 4 bytes, so the mismatch
	// surfaces as ErrInvalidData before any address byte is read.
	msg := []byte{0, 0, 1, 0, 1, 0, 0, 0, 60, 0, 5, 1, 2, 3, 4, 9}
	buf := NewBuffer(msg)
	_, err := DecodeResourceRecord(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidData))
}

func TestIPRecordDecodeWrongLength(t *testing.T) {
	var r ARecord
	buf := NewBuffer([]byte{1, 2, 3})
	r.Decode(buf, 3)
	assert.True(t, errors.Is(buf.Status(), ErrInvalidData))
}

func TestCharStringScenarioS3(t *testing.T) {
	msg := []byte{5, 'h', 'e', 'l', 'l', 'o', 0}
	buf := NewBuffer(msg)
	s, err := buf.ReadCharString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	s, err = buf.ReadCharString()
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestNAPTRScenarioS5(t *testing.T) {
	msg := []byte{
		0x00, 0x32, // order = 50
		0x00, 0x33, // preference = 51
		1, 's', // flags
		7, 'S', 'I', 'P', '+', 'D', '2', 'T', // services
		0, // regexp (empty)
		4, '_', 's', 'i', 'p',
		4, '_', 't', 'c', 'p',
		5, 'i', 'c', 's', 'c', 'f',
		5, 'b', 'r', 'n', '5', '6',
		3, 'i', 'i', 't',
		3, 'i', 'm', 's',
		0,
	}
	buf := NewBuffer(msg)
	var r NAPTRRecord
	r.Decode(buf, len(msg))
	require.NoError(t, buf.Status())
	assert.Equal(t, uint16(50), r.Order)
	assert.Equal(t, uint16(51), r.Preference)
	assert.Equal(t, "s", r.Flags)
	assert.Equal(t, "SIP+D2T", r.Services)
	assert.Equal(t, "", r.Regexp)
	assert.Equal(t, "_sip._tcp.icscf.brn56.iit.ims", r.Replacement)
}

func TestNAPTRReplacementRejectsCompression(t *testing.T) {
	msg := []byte{
		0x00, 0x32,
		0x00, 0x33,
		1, 's',
		0,
		0,
		0xC0, 0x00, // a compression pointer where an uncompressed name is required
	}
	buf := NewBuffer(msg)
	var r NAPTRRecord
	r.Decode(buf, len(msg))
	assert.True(t, errors.Is(buf.Status(), ErrLabelCompressionDisallowed))
}
