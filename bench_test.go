package bytemix

import (
	"testing"

	"github.com/p7r0x7/bytemix/internal/keystream"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

var (
	sink   Digest
	sink64 uint64
)

func benchSizes(b *testing.B, fn func(b *testing.B, msg []byte)) {
	for _, size := range []struct {
		name string
		n    int
	}{{"64B", 64}, {"1K", 1 << 10}, {"1M", 1 << 20}} {
		msg := keystream.Bytes(uint64(size.n), size.n)
		b.Run(size.name, func(b *testing.B) {
			b.SetBytes(int64(len(msg)))
			b.ReportAllocs()
			b.ResetTimer()
			fn(b, msg)
		})
	}
}

func BenchmarkSum(b *testing.B) {
	benchSizes(b, func(b *testing.B, msg []byte) {
		for i := b.N; i > 0; i-- {
			sink = Sum(msg)
		}
	})
}

func BenchmarkSumLegacy(b *testing.B) {
	benchSizes(b, func(b *testing.B, msg []byte) {
		for i := b.N; i > 0; i-- {
			sink, _ = SumMode(Legacy, msg)
		}
	})
}

func BenchmarkBlake3(b *testing.B) {
	benchSizes(b, func(b *testing.B, msg []byte) {
		for i := b.N; i > 0; i-- {
			sink = blake3.Sum256(msg)
		}
	})
}

func BenchmarkXXH3(b *testing.B) {
	benchSizes(b, func(b *testing.B, msg []byte) {
		for i := b.N; i > 0; i-- {
			sink64 = xxh3.Hash(msg)
		}
	})
}

func BenchmarkFinalize(b *testing.B) {
	b.ReportAllocs()
	s := newState()
	for i := b.N; i > 0; i-- {
		s.finalize()
	}
	sink = Digest(s)
}
