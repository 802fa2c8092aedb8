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
	"encoding/binary"

	"github.com/pierrec/xxHash/xxHash32"
)

// Key is a fixed-layout store key: [index:1][bucket-hash:4][route:4], with
// the bucket hash and route encoded little-endian. Keys sharing the first
// five bytes belong to the same (family, bucket) row space.
type Key [9]byte

// KeyPrefix is the 5-byte (family, bucket) prefix of a Key.
type KeyPrefix [5]byte

// Key family indices. Values are part of the on-disk format.
const (
	keyIndexMetaToValue uint8 = 0
	keyIndexTermToIIDs  uint8 = 1
	keyIndexOIDToIID    uint8 = 2
	keyIndexIIDToOID    uint8 = 3
	keyIndexIIDToTerms  uint8 = 4
)

// MetaKey names a per-bucket meta row.
type MetaKey uint32

// MetaIIDIncr is the internal identifier allocation counter.
const MetaIIDIncr MetaKey = 0

// HashAtom computes the 32-bit atom of an identifier (collection, bucket,
// or string route), the canonical XXH32 with seed 0.
func HashAtom(text string) uint32 {
	return xxHash32.Checksum([]byte(text), 0)
}

func makeKey(index uint8, bucketAtom uint32, route uint32) Key {
	var key Key

	key[0] = index
	binary.LittleEndian.PutUint32(key[1:5], bucketAtom)
	binary.LittleEndian.PutUint32(key[5:9], route)

	return key
}

// Prefix returns the (family, bucket) prefix of the key.
func (k Key) Prefix() KeyPrefix {
	var prefix KeyPrefix

	copy(prefix[:], k[:5])

	return prefix
}

// keyMetaToValue builds the [IDX=0] ((meta)) ~> ((value)) key.
func keyMetaToValue(bucketAtom uint32, meta MetaKey) Key {
	return makeKey(keyIndexMetaToValue, bucketAtom, uint32(meta))
}

// keyTermToIIDs builds the [IDX=1] ((term)) ~> [((iid))] key.
func keyTermToIIDs(bucketAtom uint32, termHashed uint32) Key {
	return makeKey(keyIndexTermToIIDs, bucketAtom, termHashed)
}

// keyOIDToIID builds the [IDX=2] ((oid)) ~> ((iid)) key.
func keyOIDToIID(bucketAtom uint32, oid string) Key {
	return makeKey(keyIndexOIDToIID, bucketAtom, HashAtom(oid))
}

// keyIIDToOID builds the [IDX=3] ((iid)) ~> ((oid)) key.
func keyIIDToOID(bucketAtom uint32, iid uint32) Key {
	return makeKey(keyIndexIIDToOID, bucketAtom, iid)
}

// keyIIDToTerms builds the [IDX=4] ((iid)) ~> [((term))] key.
func keyIIDToTerms(bucketAtom uint32, iid uint32) Key {
	return makeKey(keyIndexIIDToTerms, bucketAtom, iid)
}
