package cmakeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterConditionals(t *testing.T) {
	t.Parallel()

	t.Run("no blocks keeps every line", func(t *testing.T) {
		t.Parallel()
		in := "project(Demo)\nadd_executable(app main.cpp)"
		assert.Equal(t, in, filterConditionals(in))
	})

	t.Run("false branch is dropped", func(t *testing.T) {
		t.Parallel()
		in := "if(FALSE)\ndropped()\nendif()\nkept()"
		assert.Equal(t, "kept()", filterConditionals(in))
	})

	t.Run("else activates when the if branch did not", func(t *testing.T) {
		t.Parallel()
		in := "if(FALSE)\na()\nelse()\nb()\nendif()"
		assert.Equal(t, "b()", filterConditionals(in))
	})

	t.Run("only the elseif branch activates", func(t *testing.T) {
		t.Parallel()
		in := "if(FALSE)\na()\nelseif(TRUE)\nb()\nelse()\nc()\nendif()"
		assert.Equal(t, "b()", filterConditionals(in))
	})

	t.Run("no branch after one has executed", func(t *testing.T) {
		t.Parallel()
		in := "if(TRUE)\na()\nelseif(TRUE)\nb()\nelse()\nc()\nendif()"
		assert.Equal(t, "a()", filterConditionals(in))
	})

	t.Run("nested blocks require every frame active", func(t *testing.T) {
		t.Parallel()
		in := "if(TRUE)\nif(FALSE)\nhidden()\nendif()\nvisible()\nendif()"
		assert.Equal(t, "visible()", filterConditionals(in))
	})

	t.Run("an inactive outer frame hides an active inner branch", func(t *testing.T) {
		t.Parallel()
		in := "if(FALSE)\nif(TRUE)\nhidden()\nendif()\nalso_hidden()\nendif()"
		assert.Equal(t, "", filterConditionals(in))
	})

	t.Run("unbalanced open block is tolerated", func(t *testing.T) {
		t.Parallel()
		in := "if(TRUE)\nkept()"
		assert.Equal(t, "kept()", filterConditionals(in))
	})

	t.Run("keywords are matched case insensitively", func(t *testing.T) {
		t.Parallel()
		in := "IF(FALSE)\na()\nELSE()\nb()\nENDIF()"
		assert.Equal(t, "b()", filterConditionals(in))
	})

	t.Run("indented block keywords still match", func(t *testing.T) {
		t.Parallel()
		in := "if(TRUE)\n  if(FALSE)\n    x()\n  endif()\n  y()\nendif()"
		assert.Equal(t, "  y()", filterConditionals(in))
	})
}
