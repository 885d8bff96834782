package audio

import (
	"encoding/base64"
	"encoding/binary"
)

const wavHeaderSize = 44

// WAV wraps mono 16-bit samples in a RIFF/WAVE container.
func WAV(samples []int16) []byte {
	dataSize := len(samples) * 2
	b := make([]byte, wavHeaderSize+dataSize)
	le := binary.LittleEndian

	copy(b[0:], "RIFF")
	le.PutUint32(b[4:], uint32(36+dataSize))
	copy(b[8:], "WAVE")

	copy(b[12:], "fmt ")
	le.PutUint32(b[16:], 16)           // chunk size
	le.PutUint16(b[20:], 1)            // PCM
	le.PutUint16(b[22:], 1)            // mono
	le.PutUint32(b[24:], SampleRate)   // sample rate
	le.PutUint32(b[28:], SampleRate*2) // byte rate
	le.PutUint16(b[32:], 2)            // block align
	le.PutUint16(b[34:], 16)           // bits per sample

	copy(b[36:], "data")
	le.PutUint32(b[40:], uint32(dataSize))

	for i, s := range samples {
		le.PutUint16(b[wavHeaderSize+2*i:], uint16(s))
	}
	return b
}

// DataURL encodes samples as an inline WAV for an HTML audio element.
func DataURL(samples []int16) string {
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(WAV(samples))
}

// PCM16Stereo duplicates mono samples into the interleaved little-endian
// stereo layout desktop audio players expect.
func PCM16Stereo(samples []int16) []byte {
	b := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[4*i:], uint16(s))
		binary.LittleEndian.PutUint16(b[4*i+2:], uint16(s))
	}
	return b
}
