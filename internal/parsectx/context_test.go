package parsectx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhvaleri/decaffeinate/internal/parsectx"
	"github.com/bhvaleri/decaffeinate/internal/source"
)

func TestContext_Slice(t *testing.T) {
	ctx := parsectx.New(source.NewFile("a.coffee", "a += b"), nil)

	assert.Equal(t, "a += b", ctx.Source())
	assert.Equal(t, "+=", ctx.Slice(2, 4))
	assert.Equal(t, "a += b", ctx.Slice(-3, 99))
	assert.Equal(t, "", ctx.Slice(4, 2))
	assert.Equal(t, "a.coffee", ctx.Path())
	assert.Equal(t, 0, ctx.Tokens.Len())
}
