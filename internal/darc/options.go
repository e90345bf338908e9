package darc

// Option mutates Options in place; used when callers want named,
// discoverable knobs rather than constructing Options by hand.
type Option func(*Options)

// WithNamesPadding sets the alignment the name pool is padded to before the
// data section begins (spec §4.4 step 8, default 4).
func WithNamesPadding(n int) Option {
	return func(o *Options) { o.NamesPadding = n }
}

// WithFilePadding sets the alignment each non-final file is padded to
// within the data section (spec §4.4 step 10, default 0x10). The final
// file is never padded.
func WithFilePadding(n int) Option {
	return func(o *Options) { o.FilePadding = n }
}

// WithAsymmetricHeader selects the reference encoder's header-field
// convention (spec §9 Open Question 1), the default.
func WithAsymmetricHeader() Option {
	return func(o *Options) { o.HeaderMode = AsymmetricHeaderLength }
}

// WithInclusiveHeader selects the simpler, fully-inclusive header-field
// convention (spec §9 Open Question 1).
func WithInclusiveHeader() Option {
	return func(o *Options) { o.HeaderMode = InclusiveHeaderLength }
}

// NewOptions builds an Options from DefaultOptions with opts applied.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
