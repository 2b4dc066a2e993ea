package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromASCII(t *testing.T) {
	tests := []struct {
		in   rune
		want Key
	}{
		{'q', 'Q'},
		{'Q', 'Q'},
		{'1', '1'},
		{'.', '.'},
		{',', ','},
		{'\t', KeyUnknown},
		{0x7f, KeyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromASCII(tt.in), "FromASCII(%q)", tt.in)
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue()
	q.Push(KeyEvent('M', Release))
	q.Push(ResizeEvent(800, 600))
	q.Push(KeyEvent(KeyEscape, Press))

	assert.Len(t, q.Events(), 3)
	assert.Equal(t, KeyEvent('M', Release), q.Events()[0])
	assert.Equal(t, 800, q.Events()[1].Width)

	q.Clear()
	assert.Empty(t, q.Events())
}

func TestActionDown(t *testing.T) {
	assert.True(t, Press.Down())
	assert.True(t, Repeat.Down())
	assert.False(t, Release.Down())
	assert.Equal(t, "release", Release.String())
}
