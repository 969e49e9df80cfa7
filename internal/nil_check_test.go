package internal

import "testing"

type reader interface{ Read() }

type impl struct{}

func (*impl) Read() {}

func TestIsNil(t *testing.T) {
	var typed *impl
	var iface reader = typed

	cases := []struct {
		name string
		in   interface{}
		want bool
	}{
		{"untyped nil", nil, true},
		{"typed nil pointer", iface, true},
		{"nil map", map[string]int(nil), true},
		{"value", &impl{}, false},
		{"non nillable", 3, false},
	}
	for _, c := range cases {
		if got := IsNil(c.in); got != c.want {
			t.Errorf("%s: got %v want %v", c.name, got, c.want)
		}
	}
}
