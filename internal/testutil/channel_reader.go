package testutil

import "io"

var _ io.Reader = (*ChannelReader)(nil)

// ChannelReader is an io.Reader fed through channels. Every slice sent on
// BufCh is returned by subsequent reads; a signal on EOFCh makes the next read
// return io.EOF once the pending data is consumed.
type ChannelReader struct {
	BufCh chan []byte
	EOFCh chan struct{}

	pending []byte
}

func NewChannelReader() *ChannelReader {
	return &ChannelReader{
		BufCh: make(chan []byte),
		EOFCh: make(chan struct{}),
	}
}

func (r *ChannelReader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		select {
		case buf := <-r.BufCh:
			r.pending = buf
		case <-r.EOFCh:
			return 0, io.EOF
		}
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}
