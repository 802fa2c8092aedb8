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

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrKVUnavailable is returned by writes against an absent handle (a pool
// miss in open-only mode). Reads treat an absent handle as an empty store.
var ErrKVUnavailable = errors.New("kv store unavailable")

// KVAction embeds the bucket identity into every key it builds and runs the
// five key-family accessors plus the batch operations against one handle.
// A nil handle is legal: reads come back empty, writes fail flat.
type KVAction struct {
	store      *KV
	bucketAtom uint32
}

// NewKVAction builds an action scoped to bucket over store (which may be
// nil when the collection was acquired in open-only mode and is absent).
func NewKVAction(store *KV, bucket string) KVAction {
	return KVAction{
		store:      store,
		bucketAtom: HashAtom(bucket),
	}
}

// GetMeta reads a meta counter row. ok=false when unset.
func (a KVAction) GetMeta(meta MetaKey) (uint32, bool, error) {
	if a.store == nil {
		return 0, false, nil
	}

	key := keyMetaToValue(a.bucketAtom, meta)

	value, err := a.store.Get(key[:])
	if err != nil {
		log.Errorf("error getting meta-to-value: %v", err)

		return 0, false, ErrKVUnavailable
	}
	if value == nil {
		return 0, false, nil
	}

	decoded, err := decodeU32(value)
	if err != nil {
		return 0, false, err
	}

	return decoded, true, nil
}

// SetMeta writes a meta counter row.
func (a KVAction) SetMeta(meta MetaKey, value uint32) error {
	if a.store == nil {
		return ErrKVUnavailable
	}

	key := keyMetaToValue(a.bucketAtom, meta)

	return a.store.Put(key[:], encodeU32(value))
}

// GetTermToIIDs reads a term's identifier list, most recent first. A nil
// slice means the term is absent.
func (a KVAction) GetTermToIIDs(termHashed uint32) ([]uint32, error) {
	if a.store == nil {
		return nil, nil
	}

	key := keyTermToIIDs(a.bucketAtom, termHashed)

	value, err := a.store.Get(key[:])
	if err != nil {
		log.Errorf("error getting term-to-iids: %v", err)

		return nil, ErrKVUnavailable
	}
	if value == nil {
		return nil, nil
	}

	return decodeU32List(value)
}

// SetTermToIIDs writes a term's identifier list.
func (a KVAction) SetTermToIIDs(termHashed uint32, iids []uint32) error {
	if a.store == nil {
		return ErrKVUnavailable
	}

	key := keyTermToIIDs(a.bucketAtom, termHashed)

	return a.store.Put(key[:], encodeU32List(iids))
}

// DeleteTermToIIDs removes a term row.
func (a KVAction) DeleteTermToIIDs(termHashed uint32) error {
	if a.store == nil {
		return ErrKVUnavailable
	}

	key := keyTermToIIDs(a.bucketAtom, termHashed)

	return a.store.Delete(key[:])
}

// GetOIDToIID resolves an external identifier. ok=false when unknown.
func (a KVAction) GetOIDToIID(oid string) (uint32, bool, error) {
	if a.store == nil {
		return 0, false, nil
	}

	key := keyOIDToIID(a.bucketAtom, oid)

	value, err := a.store.Get(key[:])
	if err != nil {
		log.Errorf("error getting oid-to-iid: %v", err)

		return 0, false, ErrKVUnavailable
	}
	if value == nil {
		return 0, false, nil
	}

	decoded, err := decodeU32(value)
	if err != nil {
		return 0, false, err
	}

	return decoded, true, nil
}

// SetOIDToIID writes the forward identifier mapping.
func (a KVAction) SetOIDToIID(oid string, iid uint32) error {
	if a.store == nil {
		return ErrKVUnavailable
	}

	key := keyOIDToIID(a.bucketAtom, oid)

	return a.store.Put(key[:], encodeU32(iid))
}

// DeleteOIDToIID removes the forward identifier mapping.
func (a KVAction) DeleteOIDToIID(oid string) error {
	if a.store == nil {
		return ErrKVUnavailable
	}

	key := keyOIDToIID(a.bucketAtom, oid)

	return a.store.Delete(key[:])
}

// GetIIDToOID resolves an internal identifier. ok=false when unknown.
func (a KVAction) GetIIDToOID(iid uint32) (string, bool, error) {
	if a.store == nil {
		return "", false, nil
	}

	key := keyIIDToOID(a.bucketAtom, iid)

	value, err := a.store.Get(key[:])
	if err != nil {
		log.Errorf("error getting iid-to-oid: %v", err)

		return "", false, ErrKVUnavailable
	}
	if value == nil {
		return "", false, nil
	}

	return string(value), true, nil
}

// SetIIDToOID writes the reverse identifier mapping.
func (a KVAction) SetIIDToOID(iid uint32, oid string) error {
	if a.store == nil {
		return ErrKVUnavailable
	}

	key := keyIIDToOID(a.bucketAtom, iid)

	return a.store.Put(key[:], []byte(oid))
}

// DeleteIIDToOID removes the reverse identifier mapping.
func (a KVAction) DeleteIIDToOID(iid uint32) error {
	if a.store == nil {
		return ErrKVUnavailable
	}

	key := keyIIDToOID(a.bucketAtom, iid)

	return a.store.Delete(key[:])
}

// GetIIDToTerms reads an object's term set. A nil slice means no terms.
func (a KVAction) GetIIDToTerms(iid uint32) ([]uint32, error) {
	if a.store == nil {
		return nil, nil
	}

	key := keyIIDToTerms(a.bucketAtom, iid)

	value, err := a.store.Get(key[:])
	if err != nil {
		log.Errorf("error getting iid-to-terms: %v", err)

		return nil, ErrKVUnavailable
	}
	if value == nil {
		return nil, nil
	}

	return decodeU32List(value)
}

// SetIIDToTerms writes an object's term set.
func (a KVAction) SetIIDToTerms(iid uint32, termsHashed []uint32) error {
	if a.store == nil {
		return ErrKVUnavailable
	}

	key := keyIIDToTerms(a.bucketAtom, iid)

	return a.store.Put(key[:], encodeU32List(termsHashed))
}

// DeleteIIDToTerms removes an object's term set.
func (a KVAction) DeleteIIDToTerms(iid uint32) error {
	if a.store == nil {
		return ErrKVUnavailable
	}

	key := keyIIDToTerms(a.bucketAtom, iid)

	return a.store.Delete(key[:])
}

// BatchFlushBucket removes every key family row touching an object: both
// identifier mappings, the term set, and the object's entry in each of its
// terms' identifier lists. Returns the number of terms that referenced the
// object. Effects are best-effort across keys; callers must not assume
// cross-key atomicity.
func (a KVAction) BatchFlushBucket(iid uint32, oid string, iidTermsHashed []uint32) (uint32, error) {
	var count uint32

	log.Debugf("store batch flush bucket: %d with %d hashed terms", iid, len(iidTermsHashed))

	if err := a.DeleteOIDToIID(oid); err != nil {
		return 0, err
	}
	if err := a.DeleteIIDToOID(iid); err != nil {
		return 0, err
	}
	if err := a.DeleteIIDToTerms(iid); err != nil {
		return 0, err
	}

	// Delete the IID from each associated term.
	for _, termHashed := range iidTermsHashed {
		termIIDs, err := a.GetTermToIIDs(termHashed)
		if err != nil || termIIDs == nil {
			continue
		}

		if containsU32(termIIDs, iid) {
			count++

			termIIDs = removeU32(termIIDs, iid)
		}

		if len(termIIDs) == 0 {
			err = a.DeleteTermToIIDs(termHashed)
		} else {
			err = a.SetTermToIIDs(termHashed, termIIDs)
		}

		if err != nil {
			return count, err
		}
	}

	return count, nil
}

// BatchTruncateObject removes termHashed from the term set of each drained
// identifier, flushing objects whose term set becomes empty. This is the
// reverse cleanup path used when a term's identifier list is truncated.
func (a KVAction) BatchTruncateObject(termHashed uint32, iidsDrain []uint32) (uint32, error) {
	var count uint32

	for _, iid := range iidsDrain {
		log.Debugf("store batch truncate object iid: %d", iid)

		terms, err := a.GetIIDToTerms(iid)
		if err != nil || terms == nil {
			continue
		}

		count++

		terms = removeU32(terms, termHashed)

		if len(terms) == 0 {
			// The object holds no terms anymore; flush it whole.
			if oid, ok, err := a.GetIIDToOID(iid); err == nil && ok {
				if _, err := a.BatchFlushBucket(iid, oid, nil); err != nil {
					log.Errorf("failed executing batch truncate object flush: %v", err)
				}
			} else {
				log.Error("failed getting batch truncate object iid-to-oid")
			}
		} else {
			if err := a.SetIIDToTerms(iid, terms); err != nil {
				log.Errorf("failed setting batch truncate object iid-to-terms: %v", err)
			}
		}
	}

	return count, nil
}

// BatchEraseBucket removes every row of the five key families under the
// action's bucket atom.
func (a KVAction) BatchEraseBucket() (uint32, error) {
	if a.store == nil {
		return 0, ErrKVUnavailable
	}

	prefixes := [5]KeyPrefix{
		keyMetaToValue(a.bucketAtom, MetaIIDIncr).Prefix(),
		keyTermToIIDs(a.bucketAtom, 0).Prefix(),
		keyOIDToIID(a.bucketAtom, "").Prefix(),
		keyIIDToOID(a.bucketAtom, 0).Prefix(),
		keyIIDToTerms(a.bucketAtom, 0).Prefix(),
	}

	for _, prefix := range prefixes {
		log.Debugf("store batch erase bucket for prefix: %v", prefix)

		if err := a.store.DeletePrefix(prefix[:]); err != nil {
			return 0, err
		}
	}

	log.Info("done processing store batch erase bucket")

	return 1, nil
}

// CountOIDs counts the objects indexed under the bucket.
func (a KVAction) CountOIDs() (int, error) {
	if a.store == nil {
		return 0, nil
	}

	prefix := keyOIDToIID(a.bucketAtom, "").Prefix()

	return a.store.CountPrefix(prefix[:])
}

func encodeU32(decoded uint32) []byte {
	encoded := make([]byte, 4)

	binary.LittleEndian.PutUint32(encoded, decoded)

	return encoded
}

func decodeU32(encoded []byte) (uint32, error) {
	if len(encoded) < 4 {
		return 0, errors.New("short u32 value")
	}

	return binary.LittleEndian.Uint32(encoded), nil
}

// encodeU32List concatenates little-endian values, pre-reserving the exact
// capacity to avoid heap resizes on the write path.
func encodeU32List(decoded []uint32) []byte {
	encoded := make([]byte, 0, len(decoded)*4)

	for _, item := range decoded {
		encoded = binary.LittleEndian.AppendUint32(encoded, item)
	}

	return encoded
}

func decodeU32List(encoded []byte) ([]uint32, error) {
	if len(encoded)%4 != 0 {
		return nil, errors.New("misaligned u32 list value")
	}

	decoded := make([]uint32, 0, len(encoded)/4)

	for offset := 0; offset < len(encoded); offset += 4 {
		decoded = append(decoded, binary.LittleEndian.Uint32(encoded[offset:]))
	}

	return decoded, nil
}

func containsU32(values []uint32, needle uint32) bool {
	for _, value := range values {
		if value == needle {
			return true
		}
	}

	return false
}

func removeU32(values []uint32, needle uint32) []uint32 {
	kept := values[:0]

	for _, value := range values {
		if value != needle {
			kept = append(kept, value)
		}
	}

	return kept
}
