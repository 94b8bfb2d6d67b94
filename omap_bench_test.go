package omap

import (
	"fmt"
	"testing"
)

var benchDataLarge [128 << 10]string

func init() {
	for i := range benchDataLarge {
		benchDataLarge[i] = fmt.Sprintf("%b", i)
	}
}

func BenchmarkLoad(b *testing.B) {
	benchmarkLoad(b, testData[:])
}

func BenchmarkLoadLarge(b *testing.B) {
	benchmarkLoad(b, benchDataLarge[:])
}

func benchmarkLoad(b *testing.B, data []string) {
	b.ReportAllocs()
	var m Map[string, int]
	for i := range data {
		m.Insert(data[i], i)
	}
	b.ResetTimer()
	i := 0
	for n := 0; n < b.N; n++ {
		_, _ = m.Load(data[i])
		i++
		if i >= len(data) {
			i = 0
		}
	}
}

func BenchmarkInsert(b *testing.B) {
	benchmarkInsert(b, testData[:])
}

func BenchmarkInsertLarge(b *testing.B) {
	benchmarkInsert(b, benchDataLarge[:])
}

func benchmarkInsert(b *testing.B, data []string) {
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		var m Map[string, int]
		for i := range data {
			m.Insert(data[i], i)
		}
	}
}

func BenchmarkInsertInt(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		var m Map[int, int]
		for _, k := range testDataInt {
			m.Insert(k, k)
		}
	}
}

func BenchmarkDelete(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		var m Map[string, int]
		for i := range testData {
			m.Insert(testData[i], i)
		}
		b.StartTimer()
		for i := range testData {
			m.Delete(testData[i])
		}
	}
}

func BenchmarkRange(b *testing.B) {
	b.ReportAllocs()
	var m Map[string, int]
	for i := range benchDataLarge {
		m.Insert(benchDataLarge[i], i)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m.Range(func(string, int) bool { return true })
	}
}

func BenchmarkRef(b *testing.B) {
	b.ReportAllocs()
	var m Map[string, int]
	b.ResetTimer()
	i := 0
	for n := 0; n < b.N; n++ {
		*m.Ref(testData[i])++
		i++
		if i >= len(testData) {
			i = 0
		}
	}
}
