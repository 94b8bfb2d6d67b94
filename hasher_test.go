package omap

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestDefaultHasherStrings(t *testing.T) {
	h := DefaultHasher[string]()
	assert.Equal(t, h("hello"), h("hello"))
	assert.Equal(t, xxhash.Sum64String("hello"), h("hello"))
	assert.NotEqual(t, h("hello"), h("world"))
}

func TestDefaultHasherIntegers(t *testing.T) {
	hi := DefaultHasher[int]()
	assert.Equal(t, uint64(7), hi(7))
	assert.Equal(t, hi(-1), hi(-1))

	hu := DefaultHasher[uint32]()
	assert.Equal(t, uint64(0xffffffff), hu(0xffffffff))

	h8 := DefaultHasher[int8]()
	assert.Equal(t, h8(-5), h8(-5))
	assert.NotEqual(t, h8(-5), h8(5))

	hp := DefaultHasher[uintptr]()
	assert.Equal(t, uint64(4096), hp(4096))
}

func TestDefaultHasherStructs(t *testing.T) {
	h := DefaultHasher[structKey]()
	a := structKey{Service: 1, Instance: 100}
	b := structKey{Service: 1, Instance: 100}
	c := structKey{Service: 2, Instance: 100}

	assert.Equal(t, h(a), h(b))
	assert.NotEqual(t, h(a), h(c))
}

func TestDefaultHasherDeterministicAcrossMaps(t *testing.T) {
	// two maps built independently must agree on slots for equal keys,
	// so entries copied by Assign land where lookups expect them
	h1 := DefaultHasher[string]()
	h2 := DefaultHasher[string]()
	for _, k := range testData {
		assert.Equal(t, h1(k), h2(k))
	}
}
