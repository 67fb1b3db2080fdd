package media

import "context"

// ResolveImage picks the value to store for an image field. A supplied
// upload wins and is decoded inline; then the URL field; then the
// previously stored value (edits that leave the field empty keep what
// was there); then the fallback. A failed decode aborts the save.
func ResolveImage(ctx context.Context, dec Decoder, up *Upload, url, previous, fallback string) (string, error) {
	if up != nil {
		return dec.DecodeDataURL(ctx, *up)
	}
	if url != "" {
		return url, nil
	}
	if previous != "" {
		return previous, nil
	}
	return fallback, nil
}
