// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPropertyMap(t *testing.T) {
	pm := newPropertyMap()

	prop := func(key string) *Property { return &Property{Key: NewLiteral(key)} }

	for _, key := range []string{`"z"`, `"a"`, `"m"`} {
		if !pm.insert(key, prop(key)) {
			t.Errorf("insert %q: reported duplicate", key)
		}
	}
	if pm.insert(`"a"`, prop(`"a"`)) {
		t.Error(`insert "a" again: duplicate not reported`)
	}

	// A rejected duplicate leaves the members untouched.
	var keys []string
	for _, m := range pm.members {
		keys = append(keys, m.Key.Text())
	}
	if diff := cmp.Diff([]string{`"z"`, `"a"`, `"m"`}, keys); diff != "" {
		t.Errorf("members: (-want, +got)\n%s", diff)
	}
}

func TestPropertyMapRawKeys(t *testing.T) {
	pm := newPropertyMap()

	// Uniqueness is judged on the raw spelling, so an escaped duplicate
	// of an existing key is admitted.
	if !pm.insert(`"ab"`, &Property{Key: NewLiteral(`"ab"`)}) {
		t.Error("insert raw key: reported duplicate")
	}
	if !pm.insert(`"a\u0062"`, &Property{Key: NewLiteral(`"a\u0062"`)}) {
		t.Error("insert escaped spelling: reported duplicate")
	}
	if len(pm.members) != 2 {
		t.Errorf("got %d members, want 2", len(pm.members))
	}
}
