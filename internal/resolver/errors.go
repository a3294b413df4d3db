package resolver

import "errors"

// Resolution failures the request handler branches on.
var (
	// ErrClientInput means a direct redirect lacked domain or slug.
	ErrClientInput = errors.New("missing domain/slug for non-rid redirect")

	// ErrUnknownKey means no active row matched and no fallback row exists.
	ErrUnknownKey = errors.New("unknown or inactive rid")

	// ErrMappingData means the matched row has no usable domain or slug.
	ErrMappingData = errors.New("bad mapping (domain/slug)")
)
