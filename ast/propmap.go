// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

package ast

import (
	"github.com/creachadair/mds/mapset"
)

// A propertyMap accumulates the members of one object body, preserving
// insertion order and rejecting duplicate keys. Keys are the raw string
// literal text, quotes included.
//
// Order lives in the members slice; the set exists only to make the
// duplicate check O(1). A key is in the set exactly when a member with
// that key is in the slice.
type propertyMap struct {
	members []*Property
	seen    mapset.Set[string]
}

func newPropertyMap() *propertyMap {
	return &propertyMap{seen: mapset.New[string]()}
}

// insert appends prop under key and reports whether the key was new.
// Inserting a duplicate key leaves the map unmodified.
func (pm *propertyMap) insert(key string, prop *Property) bool {
	if pm.seen.Has(key) {
		return false
	}
	pm.seen.Add(key)
	pm.members = append(pm.members, prop)
	return true
}
