package speech

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// writeWAV persists samples as a mono PCM16 WAV file at the given sample
// rate. Float samples are clamped to [-1, 1] before conversion.
func writeWAV(path string, samples []float32, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}
	defer f.Close()

	const (
		channels      = 1
		bitsPerSample = 16
	)
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8
	dataSize := uint32(len(samples) * bitsPerSample / 8)

	// RIFF header
	f.WriteString("RIFF")
	binary.Write(f, binary.LittleEndian, uint32(36+dataSize))
	f.WriteString("WAVE")

	// fmt chunk
	f.WriteString("fmt ")
	binary.Write(f, binary.LittleEndian, uint32(16))
	binary.Write(f, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(f, binary.LittleEndian, uint16(channels))
	binary.Write(f, binary.LittleEndian, uint32(sampleRate))
	binary.Write(f, binary.LittleEndian, uint32(byteRate))
	binary.Write(f, binary.LittleEndian, uint16(blockAlign))
	binary.Write(f, binary.LittleEndian, uint16(bitsPerSample))

	// data chunk
	f.WriteString("data")
	binary.Write(f, binary.LittleEndian, dataSize)

	pcm := make([]int16, len(samples))
	for i, s := range samples {
		if s > 1.0 {
			s = 1.0
		} else if s < -1.0 {
			s = -1.0
		}
		pcm[i] = int16(s * 32767)
	}
	if err := binary.Write(f, binary.LittleEndian, pcm); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	return nil
}

// readWAVInfo parses the header of a WAV file written by writeWAV and
// returns its sample rate and sample count.
func readWAVInfo(path string) (sampleRate int, sampleCount int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	header := make([]byte, 44)
	if _, err := io.ReadFull(f, header); err != nil {
		return 0, 0, fmt.Errorf("failed to read WAV header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return 0, 0, fmt.Errorf("not a WAV file: %s", path)
	}

	sampleRate = int(binary.LittleEndian.Uint32(header[24:28]))
	bitsPerSample := int(binary.LittleEndian.Uint16(header[34:36]))
	dataSize := binary.LittleEndian.Uint32(header[40:44])
	if bitsPerSample == 0 {
		return 0, 0, fmt.Errorf("invalid WAV header: zero bits per sample")
	}
	sampleCount = int64(dataSize) / int64(bitsPerSample/8)
	return sampleRate, sampleCount, nil
}
