package logfields

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpersUseCanonicalKeys(t *testing.T) {
	assert.Equal(t, KeyPath, Path("x").Key)
	assert.Equal(t, KeyStage, Stage("split").Key)
	assert.Equal(t, KeyBlocks, Blocks(3).Key)
	assert.Equal(t, KeyFragments, Fragments(3).Key)
	assert.Equal(t, KeyLanguage, Language("sh").Key)
	assert.Equal(t, KeyRunID, RunID("abc").Key)
	assert.Equal(t, KeyRole, Role("prose").Key)
	assert.Equal(t, KeyCommand, Command("pandoc").Key)
}

func TestError_NilYieldsEmptyValue(t *testing.T) {
	attr := Error(nil)
	assert.Equal(t, KeyError, attr.Key)
	assert.Equal(t, "", attr.Value.String())

	attr = Error(errors.New("boom"))
	assert.Equal(t, "boom", attr.Value.String())
}
