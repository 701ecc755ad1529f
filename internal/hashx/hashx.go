// Package hashx computes the content discriminators used by duplicate
// detection: streaming full-content digests and bounded head/mid samples.
package hashx

import (
	"crypto/sha512"
	"encoding/binary"
	"hash"
	"io"
	"os"

	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// XXH returns the XXH3-64 digest of the file's content, encoded as 8
// little-endian bytes.
func XXH(path string, chunkSize int) ([]byte, error) {
	h := xxh3.New()
	if err := stream(path, chunkSize, h); err != nil {
		return nil, err
	}
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, h.Sum64())
	return out, nil
}

// Blake3 returns the 32-byte BLAKE3 digest of the file's content.
func Blake3(path string, chunkSize int) ([]byte, error) {
	h := blake3.New()
	if err := stream(path, chunkSize, h); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// SHA512 returns the 64-byte SHA2-512 digest of the file's content.
func SHA512(path string, chunkSize int) ([]byte, error) {
	h := sha512.New()
	if err := stream(path, chunkSize, h); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// stream feeds the whole file through h in chunkSize reads. A zero-length
// file leaves h at its empty-input state.
func stream(path string, chunkSize int, h hash.Hash) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, chunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n]) // hash.Hash never errors
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
