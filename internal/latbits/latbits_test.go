package latbits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialCmp64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Equal, PartialCmp64(0b0011, 0b0011))
	assert.Equal(t, Less, PartialCmp64(0b0001, 0b0011))
	assert.Equal(t, Greater, PartialCmp64(0b0011, 0b0001))
	assert.Equal(t, Incomparable, PartialCmp64(0b0001, 0b0010))
}

func TestJoinMeetComplement32(t *testing.T) {
	t.Parallel()

	a, b := uint32(0b0110), uint32(0b0011)
	assert.Equal(t, uint32(0b0111), Join32(a, b))
	assert.Equal(t, uint32(0b0010), Meet32(a, b))
	assert.Equal(t, ^a, Complement32(a))
}

func TestGenerator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(1<<5), Generator32(5))
	assert.Equal(t, uint64(1<<40), Generator64(40))
}

func TestFoldJoinMeet64(t *testing.T) {
	t.Parallel()

	xs := []uint64{0b0001, 0b0010, 0b0100}
	assert.Equal(t, uint64(0b0111), FoldJoin64(xs))
	assert.Equal(t, uint64(0), FoldMeet64(xs))

	ys := []uint64{0b1111, 0b0111, 0b0011}
	assert.Equal(t, uint64(0b1111), FoldJoin64(ys))
	assert.Equal(t, uint64(0b0011), FoldMeet64(ys))
}
