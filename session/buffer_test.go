package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioBufferAppendAndFlush(t *testing.T) {
	ab := NewAudioBuffer(1024)

	require.NoError(t, ab.Append([]byte("abc")))
	require.NoError(t, ab.Append([]byte("def")))
	assert.Equal(t, 6, ab.Size())
	assert.False(t, ab.IsEmpty())

	assert.Equal(t, []byte("abcdef"), ab.Flush(), "chunks concatenate in arrival order")
	assert.True(t, ab.IsEmpty())
	assert.Zero(t, ab.Size())
}

func TestAudioBufferFlushEmpty(t *testing.T) {
	ab := NewAudioBuffer(1024)
	assert.Nil(t, ab.Flush())
}

func TestAudioBufferFull(t *testing.T) {
	ab := NewAudioBuffer(5)

	require.NoError(t, ab.Append([]byte("abc")))
	assert.ErrorIs(t, ab.Append([]byte("def")), ErrBufferFull)

	// The rejected chunk is not partially stored
	assert.Equal(t, 3, ab.Size())
	assert.Equal(t, []byte("abc"), ab.Flush())
}

func TestAudioBufferClear(t *testing.T) {
	ab := NewAudioBuffer(1024)
	require.NoError(t, ab.Append([]byte("abc")))

	ab.Clear()
	assert.True(t, ab.IsEmpty())
	assert.Nil(t, ab.Flush())
}
