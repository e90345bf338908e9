package bcma

import "github.com/n3dsbcma/bcma/internal/darc"

// Compressor turns raw bytes into the LZSS-10 stream the console expects
// before an inner archive is embedded in the outer DARC (spec §9: the
// compressor is an injected capability, this package only implements the
// decompressor).
type Compressor func([]byte) ([]byte, error)

// Codec holds the generation-side configuration for a Manual: DARC
// alignment knobs and the injected LZSS-10 compressor. Grounded on the
// teacher's FileWriterOption pattern (rebalancing_options.go) —
// functional options that configure a value during construction.
type Codec struct {
	compress Compressor

	outerNamesPadding int
	outerFilePadding  int
	headerMode        darc.HeaderLengthMode
}

// Option configures a Codec.
type Option func(*Codec) error

// NewCodec builds a Codec from the given options, applied over the
// defaults used by the reference orchestrator (spec §4.8: outer archive
// at names-padding 0x20, file-padding 0x10).
func NewCodec(compress Compressor, opts ...Option) (*Codec, error) {
	c := &Codec{
		compress:          compress,
		outerNamesPadding: 0x20,
		outerFilePadding:  0x10,
		headerMode:        darc.AsymmetricHeaderLength,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithOuterAlignment overrides the outer DARC's name-pool and file
// padding (default 0x20/0x10, spec §4.8).
func WithOuterAlignment(namesPadding, filePadding int) Option {
	return func(c *Codec) error {
		c.outerNamesPadding = namesPadding
		c.outerFilePadding = filePadding
		return nil
	}
}

// WithInclusiveHeaderLength selects the simpler, fully-inclusive DARC
// header-length convention instead of the default asymmetric one that
// reproduces the reference encoder byte-for-byte (spec §9 Open Question
// 1).
func WithInclusiveHeaderLength() Option {
	return func(c *Codec) error {
		c.headerMode = darc.InclusiveHeaderLength
		return nil
	}
}
