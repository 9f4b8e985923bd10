//go:build bench

package test

import (
	"fmt"
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"testing"
)

const benchmarkItemCount = 1024

var benchmarkKeys = func() []string {
	keys := make([]string, benchmarkItemCount)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}
	return keys
}()

// compares with https://github.com/cornelk/hashmap and https://github.com/alphadose/haxmap as baselines.
// Both are lock free concurrent maps, so this shows the price of generality rather than a fair fight.
func setupHashMap(b *testing.B) *hashmap.Map[string, int] {
	b.Helper()

	m := hashmap.New[string, int]()
	for i, k := range benchmarkKeys {
		m.Set(k, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[string, int] {
	b.Helper()

	m := haxmap.New[string, int]()
	for i, k := range benchmarkKeys {
		m.Set(k, i)
	}
	return m
}

func setupMemHashMap(b *testing.B, crtType int, algorithm hashfunc.Algorithm) *memhashmap.HashMap {
	b.Helper()

	h, err := hashfunc.New(algorithm)
	if err != nil {
		b.Fatal(err)
	}
	m, _, err := memhashmap.NewHashMap(crtType, benchmarkItemCount, h)
	if err != nil {
		b.Fatal(err)
	}
	for i, k := range benchmarkKeys {
		if err = m.Put(k, i); err != nil {
			b.Fatal(err)
		}
	}
	return m
}

func BenchmarkReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i, k := range benchmarkKeys {
			j, _ := m.Get(k)
			if j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i, k := range benchmarkKeys {
			j, _ := m.Get(k)
			if j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadSeparateChaining(b *testing.B) {
	m := setupMemHashMap(b, crt.SeparateChaining, hashfunc.XXHash)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i, k := range benchmarkKeys {
			j, _ := m.Get(k)
			if j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadQuadraticProbing(b *testing.B) {
	m := setupMemHashMap(b, crt.QuadraticProbing, hashfunc.XXHash)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i, k := range benchmarkKeys {
			j, _ := m.Get(k)
			if j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkWriteSeparateChaining(b *testing.B) {
	for _, a := range []hashfunc.Algorithm{hashfunc.Sum, hashfunc.WeightedSum, hashfunc.CRC32, hashfunc.XXHash} {
		b.Run(a.String(), func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				setupMemHashMap(b, crt.SeparateChaining, a)
			}
		})
	}
}

func BenchmarkFindMode(b *testing.B) {
	values := make([]string, 0, 4*benchmarkItemCount)
	for i := 0; i < 4; i++ {
		values = append(values, benchmarkKeys...)
	}
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_, frequency := memhashmap.FindMode(values)
		if frequency != 4 {
			b.Fail()
		}
	}
}
