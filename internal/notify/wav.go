package notify

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
)

const (
	sampleRate = 22050
	gapSamples = sampleRate * 15 / 100 // silence between the two notes
)

// preset shapes the two-note hoot.
type preset struct {
	freq         float64 // Hz at the start of each note
	drop         float64 // fraction the pitch falls by the end of a note
	vibratoHz    float64
	vibratoDepth float64 // fraction of freq
	volume       float64 // 0..1
}

var presets = map[string]preset{
	"classic": {freq: 440, drop: 0.08, volume: 0.5},
	"deep":    {freq: 290, drop: 0.12, volume: 0.6},
	"vibrato": {freq: 420, drop: 0.05, vibratoHz: 6, vibratoDepth: 0.03, volume: 0.5},
	"soft":    {freq: 440, drop: 0.08, volume: 0.2},
}

// DefaultPreset is used when no preset is configured.
const DefaultPreset = "classic"

// Presets returns the known preset names, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HootWAV synthesizes the hoot for the named preset as a 16-bit mono WAV.
func HootWAV(name string) ([]byte, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown hoot preset %q (known: %v)", name, Presets())
	}

	// "hoo" ... "hoooo"
	var samples []int16
	samples = append(samples, p.note(0.25)...)
	samples = append(samples, make([]int16, gapSamples)...)
	samples = append(samples, p.note(0.7)...)

	return encodeWAV(samples), nil
}

func (p preset) note(seconds float64) []int16 {
	n := int(seconds * sampleRate)
	out := make([]int16, n)
	attack := 0.03 * sampleRate
	phase := 0.0
	for i := range out {
		t := float64(i) / sampleRate
		f := p.freq * (1 - p.drop*float64(i)/float64(n))
		if p.vibratoDepth > 0 {
			f *= 1 + p.vibratoDepth*math.Sin(2*math.Pi*p.vibratoHz*t)
		}
		phase += 2 * math.Pi * f / sampleRate

		env := 1.0
		if fi := float64(i); fi < attack {
			env = fi / attack
		} else if rest := float64(n - i); rest < attack*3 {
			env = rest / (attack * 3)
		}
		out[i] = int16(math.Sin(phase) * env * p.volume * math.MaxInt16)
	}
	return out
}

// encodeWAV wraps PCM samples in a canonical RIFF/WAVE header.
func encodeWAV(samples []int16) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	dataSize := uint32(len(samples) * 2)

	var buf bytes.Buffer
	w := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	buf.WriteString("RIFF")
	w(36 + dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	w(uint32(16))
	w(uint16(1)) // PCM
	w(uint16(channels))
	w(uint32(sampleRate))
	w(uint32(sampleRate * channels * bitsPerSample / 8))
	w(uint16(channels * bitsPerSample / 8))
	w(uint16(bitsPerSample))

	buf.WriteString("data")
	w(dataSize)
	w(samples)

	return buf.Bytes()
}
