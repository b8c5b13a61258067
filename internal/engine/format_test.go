package engine

import "testing"

func TestRender(t *testing.T) {
	cases := []struct {
		name     string
		template string
		want     string
	}{
		{"all placeholders", "%val%%-%min/%max", "42%-0/100"},
		{"no placeholders", "brightness", "brightness"},
		{"escaped percent only", "100%%", "100%"},
		{"unknown placeholder passes through", "%value", "42ue"},
		{"unrecognized sequence kept", "%foo", "%foo"},
		{"trailing percent kept", "val%", "val%"},
		{"placeholder at start", "%min..%max", "0..100"},
		{"adjacent placeholders", "%val%val", "4242"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.template, 0, 100, 42); got != tc.want {
				t.Fatalf("Render(%q)=%q want %q", tc.template, got, tc.want)
			}
		})
	}
}

// A substituted value containing placeholder-like text is never re-expanded;
// rendering is one pass over the template.
func TestRender_SinglePass(t *testing.T) {
	if got := Render("%val", 0, 100, 42); got != "42" {
		t.Fatalf("got %q", got)
	}
	// "%max" appearing after substitution positions still renders from the
	// original template, not from prior output.
	if got := Render("%val%max", 0, 100, 42); got != "42100" {
		t.Fatalf("got %q", got)
	}
}
