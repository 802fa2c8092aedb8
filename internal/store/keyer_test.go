// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: December 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// TestKeyer_Layout verifies the 9-byte key layout: index byte, then the
// little-endian bucket atom, then the little-endian route.
func TestKeyer_Layout(t *testing.T) {
	bucketAtom := HashAtom("bucket:1")
	key := keyIIDToOID(bucketAtom, 42)

	if key[0] != keyIndexIIDToOID {
		t.Fatalf("expected index byte %d, got %d", keyIndexIIDToOID, key[0])
	}
	if binary.LittleEndian.Uint32(key[1:5]) != bucketAtom {
		t.Fatalf("bucket atom not embedded little-endian")
	}
	if binary.LittleEndian.Uint32(key[5:9]) != 42 {
		t.Fatalf("numeric route not embedded little-endian")
	}
}

// TestKeyer_Determinism verifies bitwise-equal keys for equal inputs.
func TestKeyer_Determinism(t *testing.T) {
	first := keyTermToIIDs(HashAtom("bucket"), HashAtom("term"))
	second := keyTermToIIDs(HashAtom("bucket"), HashAtom("term"))

	if !bytes.Equal(first[:], second[:]) {
		t.Fatalf("expected deterministic keys, got %v and %v", first, second)
	}
}

// TestKeyer_PrefixSharing verifies that all keys of one (family, bucket)
// share the 5-byte prefix while other families and buckets do not.
func TestKeyer_PrefixSharing(t *testing.T) {
	bucketAtom := HashAtom("bucket:1")

	first := keyTermToIIDs(bucketAtom, 1).Prefix()
	second := keyTermToIIDs(bucketAtom, 99999).Prefix()

	if first != second {
		t.Fatalf("expected same-family keys to share a prefix")
	}

	otherFamily := keyIIDToTerms(bucketAtom, 1).Prefix()
	if first == otherFamily {
		t.Fatalf("expected distinct prefixes across families")
	}

	otherBucket := keyTermToIIDs(HashAtom("bucket:2"), 1).Prefix()
	if first == otherBucket {
		t.Fatalf("expected distinct prefixes across buckets")
	}
}

// TestHashAtom_Canonical pins the XXH32 atom values shared with the lexer.
func TestHashAtom_Canonical(t *testing.T) {
	if HashAtom("quick") != 4179131656 {
		t.Fatalf("unexpected atom for 'quick': %d", HashAtom("quick"))
	}
	if HashAtom("fox") != 667256324 {
		t.Fatalf("unexpected atom for 'fox': %d", HashAtom("fox"))
	}
}

// TestU32ListCodec verifies the round-trip of identifier lists, including
// the empty list.
func TestU32ListCodec(t *testing.T) {
	for _, values := range [][]uint32{
		{},
		{0},
		{1, 2, 3},
		{4294967295, 0, 123456789},
	} {
		decoded, err := decodeU32List(encodeU32List(values))
		if err != nil {
			t.Fatalf("unexpected codec error: %v", err)
		}
		if len(decoded) != len(values) {
			t.Fatalf("expected %v, got %v", values, decoded)
		}
		for index := range values {
			if decoded[index] != values[index] {
				t.Fatalf("expected %v, got %v", values, decoded)
			}
		}
	}

	if _, err := decodeU32List([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for misaligned value")
	}
}

// TestItem_Validation verifies identifier bounds: 1 to 128 ASCII
// characters per part.
func TestItem_Validation(t *testing.T) {
	if _, err := NewItemObject("messages", "user:1", "msg:1"); err != nil {
		t.Fatalf("unexpected error for valid item: %v", err)
	}

	if _, err := NewItemCollection(""); err != ErrInvalidCollection {
		t.Fatalf("expected invalid collection for empty string")
	}

	long := make([]byte, 129)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := NewItemCollection(string(long)); err != ErrInvalidCollection {
		t.Fatalf("expected invalid collection for 129 characters")
	}

	if _, err := NewItemBucket("messages", "ключ"); err != ErrInvalidBucket {
		t.Fatalf("expected invalid bucket for non-ASCII identifier")
	}

	if _, err := NewItemObject("messages", "user:1", ""); err != ErrInvalidObject {
		t.Fatalf("expected invalid object for empty string")
	}
}
