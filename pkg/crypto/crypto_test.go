package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTag(t *testing.T) {
	a := ContentTag([]byte(`{"name":"Иван"}`))
	assert.Len(t, a, 32)
	assert.Equal(t, a, ContentTag([]byte(`{"name":"Иван"}`)))
	assert.NotEqual(t, a, ContentTag([]byte(`{"name":"Анна"}`)))
}
