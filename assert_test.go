package jtok

import (
	"runtime/debug"
	"testing"
)

func assertTrue(t *testing.T, a interface{}) {
	if a == false {
		t.Errorf("%+v should be true %s", a, debug.Stack())
	}
}

func assertFalse(t *testing.T, a interface{}) {
	if a == true {
		t.Errorf("%+v should be false %s", a, debug.Stack())
	}
}

func assertEqual(t *testing.T, a, b interface{}) {
	if a != b {
		t.Errorf("expected value %+v not equal to actual value %+v %s", a, b, debug.Stack())
	}
}

func assertNotNil(t *testing.T, a interface{}) {
	if a == nil {
		t.Errorf("%+v should not be nil %s", a, debug.Stack())
	}
}

func assertNil(t *testing.T, a interface{}) {
	if a != nil {
		t.Errorf("%+v should be nil %s", a, debug.Stack())
	}
}
