package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyle_StringKeepsDeclarationsVerbatim(t *testing.T) {
	s := New("background: white", "", "Height:20px", "width: 20px")
	assert.Equal(t, "background: white;;Height:20px;width: 20px", s.String())
	assert.Equal(t, "", New().String())
}

func TestStyle_NewCopies(t *testing.T) {
	declarations := []string{"background: red"}
	s := New(declarations...)
	declarations[0] = "background: blue"
	assert.Equal(t, "background: red", s.String())
}

func TestStyle_HashAndEquals(t *testing.T) {
	a := New("background: red", "width: 1px")
	b := New("background: red", "width: 1px")
	c := New("width: 1px", "background: red")

	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
}
