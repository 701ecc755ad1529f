package hashx

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/rjulien/fsdig/internal/types"
)

// Head reads the first min(size, sampleSize) bytes of the file. The
// returned buffer always has exactly that length; if the file shrank since
// it was statted the tail stays zeroed and a warning is logged.
func Head(m *types.Meta, sampleSize int) ([]byte, error) {
	return sample(m, 0, sampleSize)
}

// Mid reads min(size, sampleSize) bytes starting at offset
// size / sampleSize / 2. This offset is not a geometric midpoint: for large
// files it is small, and for files smaller than 2*sampleSize it is zero, so
// the mid sample equals the head sample.
func Mid(m *types.Meta, sampleSize int) ([]byte, error) {
	offset := int64(m.Size) / int64(sampleSize) / 2
	return sample(m, offset, sampleSize)
}

// sample reads min(m.Size, sampleSize) bytes at offset, retrying short
// reads until the buffer is filled or true EOF is reached.
func sample(m *types.Meta, offset int64, sampleSize int) ([]byte, error) {
	want := sampleSize
	if m.Size < uint64(sampleSize) {
		want = int(m.Size)
	}
	buf := make([]byte, want)
	if want == 0 {
		return buf, nil
	}

	f, err := os.Open(m.Path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	n, err := f.ReadAt(buf, offset)
	if err == io.EOF {
		log.WithFields(log.Fields{
			"path": m.Path,
			"want": want,
			"got":  n,
		}).Warn("Short sample read; zero-padding tail.")
		return buf, nil
	}
	if err != nil {
		return nil, err
	}
	return buf, nil
}
