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

import "github.com/pkg/errors"

// Item addresses a point in the collection → bucket → object namespace.
// Bucket and Object are empty at shallower depths.
type Item struct {
	Collection string
	Bucket     string
	Object     string
}

var (
	// ErrInvalidCollection flags a collection identifier failing validation.
	ErrInvalidCollection = errors.New("invalid collection")

	// ErrInvalidBucket flags a bucket identifier failing validation.
	ErrInvalidBucket = errors.New("invalid bucket")

	// ErrInvalidObject flags an object identifier failing validation.
	ErrInvalidObject = errors.New("invalid object")
)

const itemPartLenMax = 128

// validItemPart accepts identifiers of 1 to 128 ASCII characters.
func validItemPart(part string) bool {
	if len(part) == 0 || len(part) > itemPartLenMax {
		return false
	}

	for i := 0; i < len(part); i++ {
		if part[i] > 127 {
			return false
		}
	}

	return true
}

// NewItemCollection validates a depth-1 item.
func NewItemCollection(collection string) (Item, error) {
	if !validItemPart(collection) {
		return Item{}, ErrInvalidCollection
	}

	return Item{Collection: collection}, nil
}

// NewItemBucket validates a depth-2 item.
func NewItemBucket(collection, bucket string) (Item, error) {
	item, err := NewItemCollection(collection)
	if err != nil {
		return Item{}, err
	}

	if !validItemPart(bucket) {
		return Item{}, ErrInvalidBucket
	}

	item.Bucket = bucket

	return item, nil
}

// NewItemObject validates a depth-3 item.
func NewItemObject(collection, bucket, object string) (Item, error) {
	item, err := NewItemBucket(collection, bucket)
	if err != nil {
		return Item{}, err
	}

	if !validItemPart(object) {
		return Item{}, ErrInvalidObject
	}

	item.Object = object

	return item, nil
}
