package bible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandments(t *testing.T) {
	list := Commandments()
	require.Len(t, list, 10)

	for i, c := range list {
		assert.Equal(t, i+1, c.Number)
		assert.NotEmpty(t, c.Text)
		assert.Equal(t, 20, c.Chapter)
		assert.LessOrEqual(t, c.FirstVerse, c.LastVerse)
	}
	assert.Equal(t, "출애굽기 20:3", list[0].Reference())
	assert.Equal(t, "출애굽기 20:4-6", list[1].Reference())
	assert.Equal(t, "출애굽기 20:8-11", list[3].Reference())
	assert.Equal(t, "EXO", list[9].Book())
	assert.Equal(t, "출애굽기 20:1-17", CommandmentsPassage())

	list[0].Text = "changed"
	assert.NotEqual(t, "changed", Commandments()[0].Text)
}
