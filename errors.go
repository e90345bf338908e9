// Package bcma is a bidirectional codec and packaging toolchain for the
// 3DS "BCMA" electronic-manual container: a DARC archive of
// LZSS-compressed DARCs, each holding BCLYT layout files and opaque CLIM
// textures, organised by region and language.
package bcma

import "github.com/pkg/errors"

// Sentinel error kinds (spec §7). Callers match with errors.Is; every
// wrapping site attaches its own location via errors.Wrapf so the
// sentinel survives alongside human-readable context.
var (
	ErrBadMagic      = errors.New("bcma: bad magic")
	ErrBadHeaderField = errors.New("bcma: bad header field")
	ErrUnknownSection = errors.New("bcma: unknown section")
	ErrUnknownEnum    = errors.New("bcma: unknown enum value")
	ErrUnknownSymbol  = errors.New("bcma: unknown symbol")
	ErrUnknownTag     = errors.New("bcma: unknown document tag")
	ErrSizeMismatch   = errors.New("bcma: size mismatch")
	ErrTreeShape      = errors.New("bcma: invalid tree shape")
	ErrDecodeText     = errors.New("bcma: text decode failure")
)
