// Package bench compares the Reader's tokenizing throughput against three
// general-purpose decoders, following the benchmarkX(b, filename) harness
// shape used by minio-simdjson-go's benchmarks package.
package bench

import (
	"encoding/json"
	"testing"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"

	"github.com/augurmark/jtok"
)

const sampleDoc = `{
	"id": 12345,
	"name": "example widget",
	"active": true,
	"tags": ["alpha", "beta", "gamma"],
	"metrics": {"cpu": 0.532, "mem": 1048576, "errors": null},
	"children": [
		{"id": 1, "weight": 1.5},
		{"id": 2, "weight": -2.25},
		{"id": 3, "weight": 3.0e2}
	]
}`

func benchmarkJtok(b *testing.B) {
	msg := []byte(sampleDoc)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := jtok.NewReader(msg, true, jtok.Options{}, nil)
		for {
			ok, err := r.Advance()
			if err != nil {
				b.Fatal(err)
			}
			if !ok {
				break
			}
		}
	}
}

func benchmarkEncodingJSON(b *testing.B) {
	msg := []byte(sampleDoc)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := json.Unmarshal(msg, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkJsoniter(b *testing.B) {
	msg := []byte(sampleDoc)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := json.Unmarshal(msg, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkSonic(b *testing.B) {
	msg := []byte(sampleDoc)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := sonic.Unmarshal(msg, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	b.Run("jtok", benchmarkJtok)
	b.Run("encoding/json", benchmarkEncodingJSON)
	b.Run("jsoniter", benchmarkJsoniter)
	b.Run("sonic", benchmarkSonic)
}
