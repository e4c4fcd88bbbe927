package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<labels xmlns="http://schema.post.be/shm/deepintegration/v3/" xmlns:ns2="http://schema.post.be/shm/deepintegration/v3/common">
	<label>
		<barcode>323212086502907303054040</barcode>
		<barcode>323212086502907303054041</barcode>
		<mimeType>application/pdf</mimeType>
		<bytes>JVBERi0xLjQ=</bytes>
	</label>
	<label>
		<barcodeWithReference>
			<barcode>323212086502907303054042</barcode>
			<reference>order-0001</reference>
		</barcodeWithReference>
		<mimeType>image/png</mimeType>
		<bytes>iVBORw0KGgo=</bytes>
	</label>
</labels>`

func TestFromXMLBytes(t *testing.T) {
	labels, err := FromXMLBytes([]byte(labelsXML))
	require.NoError(t, err)
	require.Len(t, labels, 2)

	first := labels[0]
	assert.Equal(t, []string{"323212086502907303054040", "323212086502907303054041"}, first.Barcodes())
	assert.Equal(t, "323212086502907303054040", first.Barcode())
	assert.Equal(t, "application/pdf", first.MimeType())
	assert.Equal(t, []byte("%PDF-1.4"), first.Data())

	second := labels[1]
	assert.Equal(t, "323212086502907303054042", second.Barcode())
	assert.Equal(t, "image/png", second.MimeType())
}

func TestFromXMLBytesRejectsBadBase64(t *testing.T) {
	_, err := FromXMLBytes([]byte(`<labels><label><bytes>!!!</bytes></label></labels>`))
	assert.Error(t, err)
}

func TestNewFormat(t *testing.T) {
	f, err := NewFormat("a6")
	require.NoError(t, err)
	assert.Equal(t, FormatA6, f.String())

	_, err = NewFormat("LETTER")
	assert.Error(t, err)
}
