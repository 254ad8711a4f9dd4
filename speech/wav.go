package speech

import "encoding/binary"

// Audio format expected by the transcription collaborator.
const (
	SampleRate    = 16000
	NumChannels   = 1
	BitsPerSample = 16
)

// WAVFromPCM frames raw little-endian PCM samples with a standard 44-byte
// RIFF header so they can be uploaded as a WAV file.
func WAVFromPCM(pcm []byte) []byte {
	const headerSize = 44
	byteRate := SampleRate * NumChannels * BitsPerSample / 8
	blockAlign := NumChannels * BitsPerSample / 8

	buf := make([]byte, headerSize+len(pcm))

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+len(pcm)))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // PCM chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(buf[22:24], NumChannels)
	binary.LittleEndian.PutUint32(buf[24:28], SampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], BitsPerSample)

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(len(pcm)))

	copy(buf[headerSize:], pcm)
	return buf
}

// PCMFromWAV strips a standard WAV header, returning the raw samples.
// Buffers without a RIFF marker are assumed to already be raw PCM.
func PCMFromWAV(data []byte) []byte {
	if len(data) > 44 && string(data[0:4]) == "RIFF" {
		return data[44:]
	}
	return data
}
