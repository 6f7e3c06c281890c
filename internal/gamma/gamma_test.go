package gamma

import (
	"math"
	"testing"
)

// TestDecodeAccuracy tests that the LUT matches the math.Pow implementation.
func TestDecodeAccuracy(t *testing.T) {
	maxError := float32(0.0)
	for i := 0; i < 256; i++ {
		fast := Decode8(uint8(i))
		slow := DecodeSlow(uint8(i))
		diff := float32(math.Abs(float64(fast - slow)))
		if diff > maxError {
			maxError = diff
		}
		if diff > 0.0001 {
			t.Errorf("sRGB %d: fast=%f, slow=%f, error=%f", i, fast, slow, diff)
		}
	}
	t.Logf("Max decode error: %f", maxError)
}

// TestEncodeAccuracy tests that the LUT matches the math.Pow implementation.
func TestEncodeAccuracy(t *testing.T) {
	maxError := 0
	for i := 0; i <= 1000; i++ {
		linear := float32(i) / 1000.0
		fast := Encode8(linear)
		slow := EncodeSlow(linear)
		diff := int(fast) - int(slow)
		if diff < 0 {
			diff = -diff
		}
		if diff > maxError {
			maxError = diff
		}
	}
	t.Logf("Max encode error: %d bytes (out of 255)", maxError)
	// Allow max 1-byte error due to rounding in the 12-bit LUT.
	if maxError > 1 {
		t.Errorf("Maximum error %d exceeds threshold of 1", maxError)
	}
}

// TestRoundTrip tests that sRGB → linear → sRGB preserves values.
func TestRoundTrip(t *testing.T) {
	maxError := 0
	for i := 0; i < 256; i++ {
		srgb := uint8(i)
		linear := Decode8(srgb)
		result := Encode8(linear)
		diff := int(result) - int(srgb)
		if diff < 0 {
			diff = -diff
		}
		if diff > maxError {
			maxError = diff
		}
		if diff > 1 {
			t.Errorf("Round trip %d → %f → %d (error=%d)", srgb, linear, result, diff)
		}
	}
	t.Logf("Max round-trip error: %d bytes", maxError)
}

func TestLuminance8(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    float32
	}{
		{"black", 0, 0, 0, 0.0},
		{"white", 255, 255, 255, 1.0},
		{"red", 255, 0, 0, 0.2126},
		{"green", 0, 255, 0, 0.7152},
		{"blue", 0, 0, 255, 0.0722},
		{"mid grey", 128, 128, 128, 0.21586},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance8(tt.r, tt.g, tt.b)
			if math.Abs(float64(got-tt.want)) > 0.0001 {
				t.Errorf("Luminance8(%d, %d, %d) = %f, want ~%f", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

// TestTableInitialization verifies the tables are built correctly.
func TestTableInitialization(t *testing.T) {
	if decodeLUT[0] != 0.0 {
		t.Errorf("decodeLUT[0] = %f, want 0.0", decodeLUT[0])
	}
	if decodeLUT[255] < 0.99 || decodeLUT[255] > 1.01 {
		t.Errorf("decodeLUT[255] = %f, want ~1.0", decodeLUT[255])
	}

	if encodeLUT[0] != 0 {
		t.Errorf("encodeLUT[0] = %d, want 0", encodeLUT[0])
	}
	if encodeLUT[4095] != 255 {
		t.Errorf("encodeLUT[4095] = %d, want 255", encodeLUT[4095])
	}

	// Both tables must be monotonic.
	for i := 1; i < 256; i++ {
		if decodeLUT[i] < decodeLUT[i-1] {
			t.Errorf("decodeLUT[%d] < decodeLUT[%d]: not monotonic", i, i-1)
		}
	}
	for i := 1; i < 4096; i++ {
		if encodeLUT[i] < encodeLUT[i-1] {
			t.Errorf("encodeLUT[%d] < encodeLUT[%d]: not monotonic", i, i-1)
		}
	}
}

func TestEncodeClamps(t *testing.T) {
	if got := Encode8(-0.5); got != 0 {
		t.Errorf("Encode8(-0.5) = %d, want 0", got)
	}
	if got := Encode8(1.5); got != 255 {
		t.Errorf("Encode8(1.5) = %d, want 255", got)
	}
	if got := Encode8(float32(math.NaN())); got != 255 {
		t.Errorf("Encode8(NaN) = %d, want 255", got)
	}
}

// BenchmarkDecode8 benchmarks the LUT-based conversion.
func BenchmarkDecode8(b *testing.B) {
	var result float32
	for i := 0; i < b.N; i++ {
		result = Decode8(uint8(i & 0xFF))
	}
	_ = result
}

// BenchmarkDecodeSlow benchmarks the math.Pow-based conversion.
func BenchmarkDecodeSlow(b *testing.B) {
	var result float32
	for i := 0; i < b.N; i++ {
		result = DecodeSlow(uint8(i & 0xFF))
	}
	_ = result
}

// BenchmarkEncode8 benchmarks the LUT-based conversion.
func BenchmarkEncode8(b *testing.B) {
	var result uint8
	for i := 0; i < b.N; i++ {
		result = Encode8(float32(i&0xFF) / 255.0)
	}
	_ = result
}

// BenchmarkEncodeSlow benchmarks the math.Pow-based conversion.
func BenchmarkEncodeSlow(b *testing.B) {
	var result uint8
	for i := 0; i < b.N; i++ {
		result = EncodeSlow(float32(i&0xFF) / 255.0)
	}
	_ = result
}

// BenchmarkLuminance8 benchmarks the weighted triple decode.
func BenchmarkLuminance8(b *testing.B) {
	var result float32
	for i := 0; i < b.N; i++ {
		v := uint8(i & 0xFF)
		result = Luminance8(v, v^0x55, v^0xAA)
	}
	_ = result
}
