package bstr

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"slices"
)

// ForByteLine reads r line by line and calls fn with each line, stripped
// of its "\n" or "\r\n" terminator by the same rules as Lines. A final line
// without a terminator is passed too, and an empty input yields no lines.
//
// The line aliases an internal buffer that is reused on the next call, so
// fn must copy it to keep it. Reading stops when fn returns false or an
// error, and that error is returned. A read error other than io.EOF is
// returned without passing the partial line to fn.
//
// If r is a *bufio.Reader it is used directly.
func ForByteLine(r io.Reader, fn func(line BStr) (bool, error)) error {
	return ForByteLineWithTerminator(r, func(line BStr) (bool, error) {
		return fn(trimTerminator(line))
	})
}

// ForByteLineWithTerminator is like ForByteLine but passes each line with
// its terminator, as LinesWithTerminator does.
func ForByteLineWithTerminator(r io.Reader, fn func(line BStr) (bool, error)) error {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	var line []byte
	for {
		line = line[:0]
		var err error
		for {
			var chunk []byte
			chunk, err = br.ReadSlice('\n')
			line = append(line, chunk...)
			if !errors.Is(err, bufio.ErrBufferFull) {
				break
			}
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if len(line) > 0 {
			more, ferr := fn(BStr(line[:len(line):len(line)]))
			if ferr != nil {
				return ferr
			}
			if !more {
				return nil
			}
		}
		if err != nil {
			return nil
		}
	}
}

// ByteLines returns the lines of r as a sequence of independent copies,
// terminators stripped. A read error is yielded once, with a nil line, and
// ends the sequence.
func ByteLines(r io.Reader) iter.Seq2[BStr, error] {
	return func(yield func(BStr, error) bool) {
		err := ForByteLine(r, func(line BStr) (bool, error) {
			return yield(slices.Clone(line), nil), nil
		})
		if err != nil {
			yield(nil, err)
		}
	}
}
