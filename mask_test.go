package stratum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureAddRemove(t *testing.T) {
	var s signature
	assert.True(t, s.empty())

	for _, bit := range []uint8{3, 63, 64, 130, 255} {
		s.add(bit)
		assert.True(t, s.has(bit))
	}
	assert.Equal(t, 5, s.size())
	assert.False(t, s.has(4))

	s.remove(64)
	assert.False(t, s.has(64))
	assert.Equal(t, 4, s.size())
	assert.False(t, s.empty())
}

func TestSignatureSuperset(t *testing.T) {
	var sup, sub signature
	sup.add(1)
	sup.add(70)
	sup.add(200)
	sub.add(1)
	sub.add(200)

	assert.True(t, sup.supersetOf(sub))
	assert.False(t, sub.supersetOf(sup))
	assert.True(t, sup.supersetOf(signature{}))

	sub.add(5)
	assert.False(t, sup.supersetOf(sub))
}

func TestSignatureOverlaps(t *testing.T) {
	var a, b signature
	a.add(10)
	b.add(140)
	assert.False(t, a.overlaps(b))

	b.add(10)
	assert.True(t, a.overlaps(b))
}
