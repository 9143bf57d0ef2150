package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	writer := NewAccount("a@x.com", "n", "addr", "code-1")
	writer.Status = AccountActive

	p := NewPost("hello", writer, 1700000000000)

	assert.Empty(t, p.ID)
	assert.Equal(t, "hello", p.Content)
	assert.Equal(t, int64(1700000000000), p.CreatedAt)
	assert.Nil(t, p.ModifiedAt)
	assert.Same(t, writer, p.Writer)
}

func TestPost_UpdateContent(t *testing.T) {
	writer := NewAccount("a@x.com", "n", "addr", "code-1")
	p := NewPost("hello", writer, 1700000000000)

	p.UpdateContent("updated", 1700000001000)

	assert.Equal(t, "updated", p.Content)
	assert.Equal(t, int64(1700000000000), p.CreatedAt)
	require.NotNil(t, p.ModifiedAt)
	assert.Equal(t, int64(1700000001000), *p.ModifiedAt)
}
