package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRoundTrip(t *testing.T) {
	q := Question{Name: "www.google.com", Type: uint16(TypeA), Class: uint16(ClassIN)}
	buf := NewBuffer(make([]byte, 64))
	require.NoError(t, q.Encode(buf))
	require.NoError(t, buf.Seek(0))

	got, err := DecodeQuestion(buf)
	require.NoError(t, err)
	assert.Equal(t, q, got)
}

func TestQuestionS2DomainDecode(t *testing.T) {
	msg := []byte{
		3, 'w', 'w', 'w',
		6, 'g', 'o', 'o', 'g', 'l', 'e',
		3, 'c', 'o', 'm',
		0,
	}
	buf := NewBuffer(msg)
	name, err := buf.ReadDomainName(false)
	require.NoError(t, err)
	assert.Equal(t, "www.google.com", name)
}
