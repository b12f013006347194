package standin

import "testing"

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindApply:                    "apply",
		KindGetOwnPropertyDescriptor: "getOwnPropertyDescriptor",
		KindSetPrototypeOf:           "setPrototypeOf",
		KindUnknown:                  "unknown",
		Kind(200):                    "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 13 {
		t.Fatalf("expected 13 kinds, got %d", len(kinds))
	}

	seen := make(map[string]bool)
	for _, kind := range kinds {
		if !kind.Valid() {
			t.Errorf("expected %s to be valid", kind)
		}
		if seen[kind.String()] {
			t.Errorf("duplicate kind name %s", kind)
		}
		seen[kind.String()] = true

		parsed, ok := ParseKind(kind.String())
		if !ok || parsed != kind {
			t.Errorf("expected ParseKind(%q) to return %v, got %v", kind.String(), kind, parsed)
		}
	}

	if KindUnknown.Valid() || Kind(14).Valid() {
		t.Error("expected kinds outside the set to be invalid")
	}
	if _, ok := ParseKind("call"); ok {
		t.Error("expected unknown name to fail parsing")
	}
	if _, ok := ParseKind("unknown"); ok {
		t.Error("expected the placeholder name to fail parsing")
	}
}
