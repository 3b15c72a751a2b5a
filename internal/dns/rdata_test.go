package dns

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSOARoundTrip(t *testing.T) {
	want := SOARecord{
		MName: "ns1.example.com", RName: "hostmaster.example.com",
		Serial: 2024010100, Refresh: 7200, Retry: 3600, Expire: 1209600, Minimum: 300,
	}
	buf := NewBuffer(make([]byte, 128))
	want.Encode(buf)
	require.NoError(t, buf.Status())
	require.NoError(t, buf.Seek(0))

	var got SOARecord
	got.Decode(buf, buf.Len())
	require.NoError(t, buf.Status())
	assert.Equal(t, want, got)
}

func TestMXRoundTrip(t *testing.T) {
	want := MXRecord{Preference: 10, Exchange: "mail.example.com"}
	buf := NewBuffer(make([]byte, 64))
	want.Encode(buf)
	require.NoError(t, buf.Seek(0))

	var got MXRecord
	got.Decode(buf, buf.Len())
	require.NoError(t, buf.Status())
	assert.Equal(t, want, got)
}

func TestTXTRoundTripMultipleStrings(t *testing.T) {
	want := TXTRecord{Strings: []string{"v=spf1 -all", "second chunk"}}
	buf := NewBuffer(make([]byte, 64))
	want.Encode(buf)
	dataLen := buf.Position()
	require.NoError(t, buf.Seek(0))

	var got TXTRecord
	got.Decode(buf, dataLen)
	require.NoError(t, buf.Status())
	assert.Equal(t, want, got)
}

func TestHINFORoundTrip(t *testing.T) {
	want := HINFORecord{CPU: "ARM64", OS: "LINUX"}
	buf := NewBuffer(make([]byte, 32))
	want.Encode(buf)
	require.NoError(t, buf.Seek(0))

	var got HINFORecord
	got.Decode(buf, buf.Len())
	require.NoError(t, buf.Status())
	assert.Equal(t, want, got)
}

func TestMINFORoundTrip(t *testing.T) {
	want := MINFORecord{RMailBox: "admin.example.com", EMailBox: "errors.example.com"}
	buf := NewBuffer(make([]byte, 64))
	want.Encode(buf)
	require.NoError(t, buf.Seek(0))

	var got MINFORecord
	got.Decode(buf, buf.Len())
	require.NoError(t, buf.Status())
	assert.Equal(t, want, got)
}

func TestWKSRoundTrip(t *testing.T) {
	want := WKSRecord{Addr: net.IPv4(10, 0, 0, 1), Protocol: 6, Bitmap: []byte{0x40, 0x01}}
	buf := NewBuffer(make([]byte, 16))
	want.Encode(buf)
	require.NoError(t, buf.Seek(0))

	var got WKSRecord
	got.Decode(buf, 4+1+len(want.Bitmap))
	require.NoError(t, buf.Status())
	assert.True(t, got.Addr.Equal(want.Addr))
	assert.Equal(t, want.Protocol, got.Protocol)
	assert.Equal(t, want.Bitmap, got.Bitmap)
}

func TestNewWKSRecordClampsProtocol(t *testing.T) {
	r := NewWKSRecord(net.IPv4(1, 2, 3, 4), 9999, nil)
	assert.Equal(t, uint8(255), r.Protocol)
}

func TestSRVRoundTrip(t *testing.T) {
	want := SRVRecord{Priority: 10, Weight: 60, Port: 5060, Target: "sipserver.example.com"}
	buf := NewBuffer(make([]byte, 64))
	want.Encode(buf)
	require.NoError(t, buf.Status())
	require.NoError(t, buf.Seek(0))

	var got SRVRecord
	got.Decode(buf, buf.Len())
	require.NoError(t, buf.Status())
	assert.Equal(t, want, got)
}

func TestOPTRoundTrip(t *testing.T) {
	want := OPTRecord{Data: []byte{0x00, 0x0a, 0x00, 0x02, 0xab, 0xcd}}
	buf := NewBuffer(make([]byte, 16))
	want.Encode(buf)
	require.NoError(t, buf.Seek(0))

	var got OPTRecord
	got.Decode(buf, len(want.Data))
	require.NoError(t, buf.Status())
	assert.Equal(t, want, got)
}
