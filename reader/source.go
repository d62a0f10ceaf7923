package reader

import "io"

// sourceChunkSize bounds the bytes handed to the tokenizer per read so
// that a NextFeature call consumes input in small increments.
const sourceChunkSize = 8 * 1024

// chunkedSource caps each Read at sourceChunkSize bytes.
type chunkedSource struct {
	src io.Reader
}

func newChunkedSource(src io.Reader) *chunkedSource {
	return &chunkedSource{src: src}
}

func (c *chunkedSource) Read(b []byte) (int, error) {
	if len(b) > sourceChunkSize {
		b = b[:sourceChunkSize]
	}
	return c.src.Read(b)
}
