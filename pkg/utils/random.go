package utils

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// NewRNG создает детерминированный генератор из сида.
// Один генератор на симуляцию: в тестах сид фиксированный, в бою - случайный.
func NewRNG(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

// RandomSeed берет сид из crypto/rand (замена time.Now().UnixNano() для параллельных стартов)
func RandomSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("failed to generate random seed: " + err.Error())
	}
	// Бит знака отбрасываем, чтобы сид было удобно печатать и передавать флагом
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1)
}

// DeriveSeed - сид N-й партии от мастер-сида (Seed N = MasterSeed + N).
// Переполнение заворачивается как обычная арифметика int64.
func DeriveSeed(master int64, n int) int64 {
	return master + int64(n)
}
