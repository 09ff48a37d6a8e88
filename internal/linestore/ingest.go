package linestore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"

	"github.com/conterm/contools/internal/contools"
	"github.com/conterm/contools/internal/vtcolor"
)

// Decoder converts one raw line of input bytes (without its line-ending
// bytes) into decoded text. It is the external encoding-conversion
// collaborator named in the spec's scope boundary; callers typically pass
// an adapter over golang.org/x/text/encoding.
type Decoder interface {
	Decode(raw []byte) (string, error)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(raw []byte) (string, error)

func (f DecoderFunc) Decode(raw []byte) (string, error) { return f(raw) }

// PassthroughDecoder treats input as already being UTF-8/ASCII text.
var PassthroughDecoder Decoder = DecoderFunc(func(raw []byte) (string, error) {
	return string(raw), nil
})

// Ingest runs the pager's background producer: it reads one line at a time
// from r, decodes it, appends it to store (threading VT color state from
// the previous line), and wakes the event loop. It terminates on context
// cancellation, EOF, or a scanner allocation failure, marking store's OOM
// flag on the latter. Intended to run on its own goroutine; the pager
// reports ErrOutOfMemory through the store's OOM flag and returns any other
// error except ErrInputExhausted only when no line was ingested.
func Ingest(ctx context.Context, r io.Reader, dec Decoder, store *Store) error {
	defer store.MarkDone()

	if dec == nil {
		dec = PassthroughDecoder
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		raw := sc.Bytes()
		text, err := dec.Decode(append([]byte(nil), raw...))
		if err != nil {
			log.Printf("linestore: decode error, line kept raw: %v", err)
			text = string(raw)
		}
		store.Append(text, vtcolor.ScanTrailingColor)
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			store.SetOOM()
			return contools.ErrOutOfMemory
		}
		return err
	}

	return contools.ErrInputExhausted
}
