// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package lifecycle

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// SerializeTags produces the stored form of a tag list: a JSON array as text.
// An empty or nil list is stored as NULL (nil). Tags must pass ValidTags;
// invalid UTF-8 would come back as U+FFFD.
func SerializeTags(tags []string) *string {
	if len(tags) == 0 {
		return nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		// []string always marshals.
		panic(fmt.Sprintf("serialize tags: %v", err))
	}
	s := string(b)
	return &s
}

// DeserializeTags is the inverse of SerializeTags. NULL and empty text
// decode to an empty, non-nil slice.
func DeserializeTags(stored *string) ([]string, error) {
	if stored == nil || *stored == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(*stored), &tags); err != nil {
		return nil, fmt.Errorf("deserialize tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// NormalizeTags returns a copy of tags that is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// ValidTags reports whether every tag is valid UTF-8, which is what the
// stored form can represent exactly.
func ValidTags(tags []string) bool {
	for _, t := range tags {
		if !utf8.ValidString(t) {
			return false
		}
	}
	return true
}
