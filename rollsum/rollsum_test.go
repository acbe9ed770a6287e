package rollsum

import (
	"testing"
)

func TestThatSetBlockAgreesWithOneShotHash(t *testing.T) {
	block := []byte("the quick brown!")

	r := NewRollsum32(len(block))
	r.SetBlock(block)

	if r.Sum32() != Hash(block) {
		t.Errorf(
			"SetBlock sum %x does not match one-shot hash %x",
			r.Sum32(),
			Hash(block),
		)
	}
}

func TestThatRollingAgreesWithOneShotHashOnEveryWindow(t *testing.T) {
	const window = 8
	data := []byte("abcdefghijklmnopqrstuvwxyz0123456789")

	r := NewRollsum32(window)
	r.SetBlock(data[:window])

	for i := 0; i+window <= len(data); i++ {
		expected := Hash(data[i : i+window])

		if r.Sum32() != expected {
			t.Fatalf(
				"window at %v: rolled sum %x, one-shot %x",
				i,
				r.Sum32(),
				expected,
			)
		}

		if i+window < len(data) {
			r.Roll(data[i+window])
		}
	}
}

func TestThatRollingWrapsModulo16Bits(t *testing.T) {
	const window = 32

	// 0xff bytes overflow a 16-bit b sum quickly, so a long run of them
	// exercises the wraparound
	data := make([]byte, 4096)
	for i := range data {
		data[i] = 0xff
	}
	data[2048] = 0x01

	r := NewRollsum32(window)
	r.SetBlock(data[:window])

	for i := 0; i+window < len(data); i++ {
		r.Roll(data[i+window])

		if sum := Hash(data[i+1 : i+1+window]); r.Sum32() != sum {
			t.Fatalf("window at %v: rolled sum %x, one-shot %x", i+1, r.Sum32(), sum)
		}
	}
}

func TestThatDifferentWindowsUsuallyHashDifferently(t *testing.T) {
	a := Hash([]byte("hello world 1234"))
	b := Hash([]byte("hello world 1235"))

	if a == b {
		t.Errorf("distinct windows hashed identically: %x", a)
	}
}

func TestRegressionKnownComposite(t *testing.T) {
	// a = 'a'+'b'+'c'+'d' = 394, b = 4*'a'+3*'b'+2*'c'+'d' = 980
	sum := Hash([]byte("abcd"))
	expected := uint32(980)<<16 | uint32(394)

	if sum != expected {
		t.Errorf("hash of abcd was %x, expected %x", sum, expected)
	}
}

func BenchmarkRoll(b *testing.B) {
	data := make([]byte, 16)
	r := NewRollsum32(16)
	r.SetBlock(data)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r.Roll(byte(i))
	}
}
