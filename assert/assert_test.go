package assert_test

import (
	"testing"

	"github.com/saylorsolutions/subject/assert"
)

func TestTrue(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Error("Should not have panicked:", r)
		}
	}()
	assert.True("true", true)
	assert.TrueFunc("returns true", func() bool {
		return true
	})
}

func TestTrue_Violated(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Log(r)
		} else {
			t.Error("Should have panicked")
		}
	}()
	assert.True("false", false)
}

func TestTrueFunc_Violated(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Log(r)
		} else {
			t.Error("Should have panicked")
		}
	}()
	assert.TrueFunc("returns false", func() bool {
		return false
	})
}
