// Package simdhint reports whether the running CPU has the vector
// extensions that make bulk byte scanning (the IndexByte/Count passes in
// package jtok) cheap. The Reader's scanning is already expressed as
// library calls the Go compiler and runtime can vectorize on a supporting
// CPU; this package just surfaces that fact to callers such as cmd/jtok's
// --cpu-info, the way minio-simdjson-go's SupportedCPU does for its assembly
// kernels.
package simdhint

import "github.com/klauspost/cpuid/v2"

// Supported reports whether the CPU has AVX2, which both the Go runtime's
// internal memchr-style routines and klauspost/compress's gzip path take
// advantage of.
func Supported() bool {
	return cpuid.CPU.Supports(cpuid.AVX2)
}

// Summary returns a short human-readable description of the detected CPU
// features relevant to byte scanning, for diagnostic output.
func Summary() string {
	if Supported() {
		return cpuid.CPU.BrandName + " (AVX2)"
	}
	return cpuid.CPU.BrandName + " (no AVX2, scalar scanning)"
}
