package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntList(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, ParseIntList("2,3,4"))
	assert.Equal(t, []int{3, 7}, ParseIntList(" 3 , 7 "))
	assert.Equal(t, []int{7}, ParseIntList("7,abc,"))
	assert.Nil(t, ParseIntList(""))
}
