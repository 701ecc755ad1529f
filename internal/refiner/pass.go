package refiner

import (
	"encoding/binary"

	"github.com/rjulien/fsdig/internal/hashx"
	"github.com/rjulien/fsdig/internal/types"
)

// Config selects the pipeline shape. Sample and chunk sizes are in bytes;
// the cryptographic passes are opt-in reassurance on top of xxh.
type Config struct {
	SampleSize int
	ChunkSize  int
	Blake3     bool
	SHA512     bool
}

// Pass computes one discriminator kind: the byte-string that decides
// whether two files still agree at this stage. Parallel controls
// member-level fan-out within a group — worth it for full-content hashing,
// measurably slower for metadata-only discriminators.
type Pass struct {
	Name     string
	Parallel bool
	Fn       func(*types.Meta) ([]byte, error)
}

// Pipeline builds the pass sequence: size, head sample, mid sample,
// full-content xxh, then the optional blake3 and sha2-512 passes. Each
// stage is cheaper than the next and shrinks the candidate set before the
// next one runs.
func Pipeline(cfg Config) []Pass {
	passes := []Pass{
		{
			Name: "size",
			Fn: func(m *types.Meta) ([]byte, error) {
				buf := make([]byte, 8)
				binary.LittleEndian.PutUint64(buf, m.Size)
				return buf, nil
			},
		},
		{
			Name:     "head",
			Parallel: true,
			Fn: func(m *types.Meta) ([]byte, error) {
				return hashx.Head(m, cfg.SampleSize)
			},
		},
		{
			Name:     "mid",
			Parallel: true,
			Fn: func(m *types.Meta) ([]byte, error) {
				return hashx.Mid(m, cfg.SampleSize)
			},
		},
		{
			Name:     "xxh",
			Parallel: true,
			Fn: func(m *types.Meta) ([]byte, error) {
				return hashx.XXH(m.Path, cfg.ChunkSize)
			},
		},
	}
	if cfg.Blake3 {
		passes = append(passes, Pass{
			Name:     "blake3",
			Parallel: true,
			Fn: func(m *types.Meta) ([]byte, error) {
				return hashx.Blake3(m.Path, cfg.ChunkSize)
			},
		})
	}
	if cfg.SHA512 {
		passes = append(passes, Pass{
			Name:     "sha512",
			Parallel: true,
			Fn: func(m *types.Meta) ([]byte, error) {
				return hashx.SHA512(m.Path, cfg.ChunkSize)
			},
		})
	}
	return passes
}
