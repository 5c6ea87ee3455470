package utils

import (
	"math"
	"testing"
)

func TestNewRandSource(t *testing.T) {
	// Test with seed
	rng1 := NewRandSource(12345)
	if rng1 == nil {
		t.Fatal("Expected RandSource to be created")
	}

	// Test with zero seed (should use current time)
	rng2 := NewRandSource(0)
	if rng2 == nil {
		t.Fatal("Expected RandSource to be created with zero seed")
	}
}

func TestRandSourceFloat64(t *testing.T) {
	rng := NewRandSource(12345)

	for i := 0; i < 100; i++ {
		val := rng.Float64()
		if val < 0 || val >= 1.0 {
			t.Errorf("Float64() returned value outside [0, 1): %f", val)
		}
	}
}

func TestRandSourceIntn(t *testing.T) {
	rng := NewRandSource(12345)

	for i := 0; i < 100; i++ {
		val := rng.Intn(10)
		if val < 0 || val >= 10 {
			t.Errorf("Intn(10) returned value outside [0, 10): %d", val)
		}
	}
}

func TestRandSourceNormFloat64(t *testing.T) {
	rng := NewRandSource(12345)
	meanVal := 10.0
	stddev := 2.0

	samples := make([]float64, 1000)
	for i := 0; i < 1000; i++ {
		samples[i] = rng.NormFloat64(meanVal, stddev)
	}

	// Check mean
	actualMean := Mean(samples)
	tolerance := 0.5
	if math.Abs(actualMean-meanVal) > tolerance {
		t.Errorf("NormFloat64 mean %f not close to expected %f", actualMean, meanVal)
	}

	// Check stddev
	actualStddev := StdDev(samples)
	if math.Abs(actualStddev-stddev) > tolerance {
		t.Errorf("NormFloat64 stddev %f not close to expected %f", actualStddev, stddev)
	}
}

func TestRandSourceUniformFloat64(t *testing.T) {
	rng := NewRandSource(12345)
	min := 5.0
	max := 15.0

	for i := 0; i < 100; i++ {
		val := rng.UniformFloat64(min, max)
		if val < min || val >= max {
			t.Errorf("UniformFloat64(%f, %f) returned value outside range: %f", min, max, val)
		}
	}
}

func TestDeterministicBehavior(t *testing.T) {
	// Same seed should produce same sequence
	rng1 := NewRandSource(999)
	rng2 := NewRandSource(999)

	for i := 0; i < 10; i++ {
		val1 := rng1.Float64()
		val2 := rng2.Float64()
		if val1 != val2 {
			t.Errorf("Same seed should produce same sequence: %f != %f", val1, val2)
		}
	}
}
