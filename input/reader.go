package input

import (
	"bufio"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
)

// DefaultBufferSize is the number of runes a ReaderSource decodes per chunk.
const DefaultBufferSize = 0xffff

// ReaderSource is a rune Source backed by an io.Reader.
//
// Runes are decoded lazily in chunks. Chunks are linked into an immutable chain shared by all
// ReaderSource values derived from the same reader, so backtracking to a retained
// ReaderSource never re-reads anything. Chunks that no retained value can reach are garbage
// collected.
type ReaderSource struct {
	state  *readerState
	chunk  *chunk
	offset int
}

var (
	_ Source[rune]  = ReaderSource{}
	_ Dropper[rune] = ReaderSource{}
)

type readerState struct {
	r    *bufio.Reader
	size int
	err  error
}

type chunk struct {
	data  []rune
	state *readerState
	once  sync.Once
	next  *chunk
}

// NewReaderSource reads runes from r, bufferSize runes at a time.
//
// The first chunk is read immediately; errors reading it are returned. Errors reading later
// chunks end the source early and are reported by Err.
func NewReaderSource(r io.Reader, bufferSize int) (ReaderSource, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	state := &readerState{r: bufio.NewReader(r), size: bufferSize}
	first := state.read()
	if state.err != nil {
		return ReaderSource{}, state.err
	}
	return ReaderSource{state: state, chunk: first}, nil
}

func (s *readerState) read() *chunk {
	if s.err != nil {
		return nil
	}
	data := make([]rune, 0, s.size)
	for len(data) < s.size {
		r, _, err := s.r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			s.err = errors.Wrap(err, "failed to read source")
			break
		}
		data = append(data, r)
	}
	if len(data) == 0 {
		return nil
	}
	return &chunk{data: data, state: s}
}

func (c *chunk) following() *chunk {
	c.once.Do(func() { c.next = c.state.read() })
	return c.next
}

// Err returns the first error encountered while reading, if any.
func (s ReaderSource) Err() error {
	if s.state == nil {
		return nil
	}
	return s.state.err
}

func (s ReaderSource) Current() rune { return s.chunk.data[s.offset] }

func (s ReaderSource) HasNext() bool { return s.chunk != nil }

func (s ReaderSource) Advance() Source[rune] {
	switch {
	case s.chunk == nil:
		return s
	case s.offset+1 < len(s.chunk.data):
		return ReaderSource{state: s.state, chunk: s.chunk, offset: s.offset + 1}
	default:
		return ReaderSource{state: s.state, chunk: s.chunk.following()}
	}
}

func (s ReaderSource) Drop(n int) Source[rune] {
	for n > 0 && s.chunk != nil {
		if s.offset+n < len(s.chunk.data) {
			return ReaderSource{state: s.state, chunk: s.chunk, offset: s.offset + n}
		}
		n -= len(s.chunk.data) - s.offset
		s = ReaderSource{state: s.state, chunk: s.chunk.following()}
	}
	return s
}

func (s ReaderSource) String() string {
	if s.chunk == nil {
		return ""
	}
	return string(s.chunk.data[s.offset:]) + "..."
}
