package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadBase64ImageRejectsMalformedPayload(t *testing.T) {
	// No comma separator at all
	_, err := UploadBase64ImageToS3("not-a-data-url", "item")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid base64 image")

	// Comma present but no "data:" scheme before it
	_, err = UploadBase64ImageToS3("foo,AAAA", "item")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid base64 image")

	// Well-formed header with garbage payload fails at decode
	_, err = UploadBase64ImageToS3("data:image/jpeg;base64,!!!", "item")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode image")
}
