package runes

import (
	"golang.org/x/text/transform"

	"github.com/coregx/bstr/simd"
)

// replacement is the UTF-8 encoding of utf8.RuneError.
const replacement = "\uFFFD"

// AppendLossy appends b to dst with every maximal subpart of invalid UTF-8
// replaced by U+FFFD, and returns the extended buffer. Valid input is
// copied unchanged.
func AppendLossy(dst, b []byte) []byte {
	for len(b) > 0 {
		valid := ValidPrefix(b)
		dst = append(dst, b[:valid]...)
		b = b[valid:]
		if len(b) == 0 {
			break
		}
		_, size, _ := Decode(b)
		dst = append(dst, replacement...)
		b = b[size:]
	}
	return dst
}

// lossyTransformer is the streaming form of AppendLossy.
type lossyTransformer struct {
	transform.NopResetter
}

// NewLossyTransformer returns a transform.Transformer that replaces each
// maximal subpart of invalid UTF-8 with U+FFFD. A sequence split across two
// source chunks is held back until the rest of it arrives, so the output
// does not depend on how the input is chunked.
//
// Example:
//
//	r := transform.NewReader(file, runes.NewLossyTransformer())
func NewLossyTransformer() transform.Transformer {
	return lossyTransformer{}
}

// Transform implements transform.Transformer.
func (lossyTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		rest := src[nSrc:]

		if run := simd.FirstNonASCII(rest); run != 0 {
			if run < 0 {
				run = len(rest)
			}
			n := copy(dst[nDst:], rest[:run])
			nDst += n
			nSrc += n
			if n < run {
				return nDst, nSrc, transform.ErrShortDst
			}
			continue
		}

		_, size, ok := Decode(rest)
		if !ok && !atEOF && NeedsMore(rest) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		out := rest[:size]
		if !ok {
			out = []byte(replacement)
		}
		if len(dst)-nDst < len(out) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += size
	}
	return nDst, nSrc, nil
}
