package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreen_Clone(t *testing.T) {
	name := "Display-3"
	original := &Screen{Num: 3, DisplayName: &name}

	cloned := original.Clone()
	assert.Equal(t, original, cloned)

	*cloned.DisplayName = "changed"
	assert.Equal(t, "Display-3", *original.DisplayName)

	var nilScreen *Screen
	assert.Nil(t, nilScreen.Clone())
}

func TestScreen_HasName(t *testing.T) {
	var nilScreen *Screen
	assert.False(t, nilScreen.HasName())
	assert.False(t, New(0).HasName())

	name := ""
	assert.True(t, (&Screen{DisplayName: &name}).HasName())
}
