// Package analysis offers offline tools for recorded runs: swing frequency
// via a power spectrum, and phase-space portraits of angle against angular
// velocity.
package analysis

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform, radix-2 in place over a
// bit-reversed copy of the input. The input length must be a power of two;
// use PadPow2 first.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n&(n-1) != 0 {
		panic("fft requires power of 2 length")
	}

	out := make([]complex128, n)
	shift := bits.LeadingZeros(uint(n)) + 1
	for i, v := range data {
		out[bits.Reverse(uint(i))>>shift] = complex(v, 0)
	}

	for size := 2; size <= n; size *= 2 {
		step := cmplx.Exp(complex(0, -2*math.Pi/float64(size)))
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for k := start; k < start+size/2; k++ {
				a, b := out[k], w*out[k+size/2]
				out[k] = a + b
				out[k+size/2] = a - b
				w *= step
			}
		}
	}
	return out
}

// PadPow2 copies data into the smallest power-of-two buffer that holds it,
// zero padded.
func PadPow2(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)
	return padded
}

// PowerSpectrum returns the magnitude of each frequency bin up to the Nyquist
// frequency.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

// DominantFrequency finds the strongest non-DC bin and converts it to hertz
// given the sample rate. Returns 0 for flat or empty input.
func DominantFrequency(data []float64, sampleRate float64) float64 {
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	if len(data) > 0 {
		mean /= float64(len(data))
	}
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	padded := PadPow2(centered)
	ps := PowerSpectrum(padded)

	maxPower, maxIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 {
		return 0
	}
	return float64(maxIdx) * sampleRate / float64(len(padded))
}
