package pathdiff

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the RFC 7386 merge patch turning the JSON document
// left into right.
func MergePatch(left, right []byte) ([]byte, error) {
	p, err := jsonpatch.CreateMergePatch(left, right)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return p, nil
}

// ApplyMergePatch applies an RFC 7386 merge patch to the JSON document doc.
func ApplyMergePatch(doc, patch []byte) ([]byte, error) {
	res, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return res, nil
}

// ApplyPatch applies an RFC 6902 JSON patch to the JSON document doc.
func ApplyPatch(doc, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: patch: %w", ErrMalformedDocument, err)
	}
	res, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return res, nil
}
