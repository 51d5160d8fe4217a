package random

import (
	"encoding/binary"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/crypto/blake2b"
)

const (
	seedLen       = 32
	jitterSamples = 16
)

// whiten hashes the seed material together with a fresh CSPRNG draw and maps the
// first 32 bits of the digest into [0,1). The seed never reaches the caller directly.
func whiten(seed []byte) float64 {
	material := make([]byte, 0, len(seed)+seedLen)
	material = append(material, seed...)
	material = append(material, cryptoBytes(seedLen)...)

	sum := blake2b.Sum256(material)
	return float64(binary.BigEndian.Uint32(sum[:4])) / uint32Range
}

// timingJitter fills a seed buffer with the low bits of successive clock deltas.
func timingJitter() []byte {
	seed := make([]byte, seedLen)
	last := time.Now().UnixNano()
	for i := 0; i < jitterSamples; i++ {
		now := time.Now().UnixNano()
		delta := uint64(now - last)
		last = now

		pos := (i * 8) % seedLen
		cur := binary.LittleEndian.Uint64(seed[pos : pos+8])
		binary.LittleEndian.PutUint64(seed[pos:pos+8], (cur^uint64(now))+delta)
	}
	return seed
}

// systemNoise mixes memory and CPU counters of the host into the timing seed. Counters
// that cannot be read are skipped, the CSPRNG draw in whiten still applies.
func systemNoise() []byte {
	seed := timingJitter()
	mix := func(pos int, v uint64) {
		pos %= seedLen - 8
		cur := binary.LittleEndian.Uint64(seed[pos : pos+8])
		binary.LittleEndian.PutUint64(seed[pos:pos+8], cur^v)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		mix(0, vm.Used)
		mix(8, vm.Free)
		mix(16, vm.Available)
	}

	if times, err := cpu.Times(false); err == nil && len(times) > 0 {
		t := times[0]
		mix(4, uint64(t.User*1e6))
		mix(12, uint64(t.System*1e6))
		mix(20, uint64(t.Idle*1e6))
	}

	return seed
}
