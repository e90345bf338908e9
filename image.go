package bcma

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/n3dsbcma/bcma/internal/rle"
)

// encodeImageHex renders opaque texture bytes as the hex-RLE text the
// document format embeds them as (spec §4.3).
func encodeImageHex(data []byte) string {
	return rle.Encode(hex.EncodeToString(data))
}

// decodeImageHex is the inverse of encodeImageHex.
func decodeImageHex(s string) ([]byte, error) {
	h, err := rle.Decode(s)
	if err != nil {
		return nil, errors.Wrap(ErrDecodeText, err.Error())
	}
	data, err := hex.DecodeString(h)
	if err != nil {
		return nil, errors.Wrap(ErrDecodeText, err.Error())
	}
	return data, nil
}
