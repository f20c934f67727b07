package toggle

import "testing"

func boolPtr(v bool) *bool { return &v }

func TestReconcile(t *testing.T) {
	tests := []struct {
		name     string
		prev     *bool
		external bool
		internal bool
		want     bool
	}{
		{"first external differs", nil, true, false, true},
		{"first external matches", nil, false, false, false},
		{"prop unchanged, internal drifted", boolPtr(false), false, true, false},
		{"prop changed to match internal", boolPtr(false), true, true, false},
		{"prop changed, differs", boolPtr(false), true, false, true},
		{"prop re-set to same value", boolPtr(true), true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reconcile(tt.prev, tt.external, tt.internal); got != tt.want {
				t.Fatalf("reconcile(%v, %v, %v) = %v, want %v",
					tt.prev, tt.external, tt.internal, got, tt.want)
			}
		})
	}
}
