package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestValidateImageBySniffAcceptsPNG(t *testing.T) {
	mime, err := ValidateImageBySniff("photo.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
}

func TestValidateImageBySniffRejectsUnknownExtension(t *testing.T) {
	_, err := ValidateImageBySniff("script.exe", pngHeader)
	assert.Error(t, err)
}

func TestValidateImageBySniffRejectsHTMLContent(t *testing.T) {
	_, err := ValidateImageBySniff("sneaky.png", []byte("<html><body>hi</body></html>"))
	assert.Error(t, err)
}

func TestValidateImageBySniffRejectsSVG(t *testing.T) {
	_, err := ValidateImageBySniff("image.svg", []byte(`<?xml version="1.0"?><svg></svg>`))
	assert.Error(t, err)
}

func TestValidateImageBySniffRejectsNonImageContent(t *testing.T) {
	_, err := ValidateImageBySniff("notes.png", []byte("just some plain text, no image"))
	assert.Error(t, err)
}
