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

package query

import (
	"sable/internal/lexer"
	"sable/internal/store"
)

// Search builds a search query. Query terms get the full cleanup treatment
// so they match what the push path indexed.
func Search(eventID, collection, bucket, terms string, limit uint16, offset uint32) (Query, error) {
	item, err := store.NewItemBucket(collection, bucket)
	if err != nil {
		return Query{}, err
	}

	return Query{
		Type:    TypeSearch,
		Item:    item,
		EventID: eventID,
		Lexer:   lexer.New(lexer.NormalizeAndCleanup, terms),
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// Suggest builds a word-completion query. The prefix is normalized only;
// completing a stop-word prefix is legitimate.
func Suggest(eventID, collection, bucket, prefix string, limit uint16) (Query, error) {
	item, err := store.NewItemBucket(collection, bucket)
	if err != nil {
		return Query{}, err
	}

	return Query{
		Type:    TypeSuggest,
		Item:    item,
		EventID: eventID,
		Lexer:   lexer.New(lexer.NormalizeOnly, prefix),
		Limit:   limit,
	}, nil
}

// List builds a word enumeration query over a bucket's dictionary.
func List(eventID, collection, bucket string, limit uint16, offset uint32) (Query, error) {
	item, err := store.NewItemBucket(collection, bucket)
	if err != nil {
		return Query{}, err
	}

	return Query{
		Type:    TypeList,
		Item:    item,
		EventID: eventID,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// Push builds an ingest query over cleaned-up text.
func Push(collection, bucket, object, text string) (Query, error) {
	item, err := store.NewItemObject(collection, bucket, object)
	if err != nil {
		return Query{}, err
	}

	return Query{
		Type:  TypePush,
		Item:  item,
		Lexer: lexer.New(lexer.NormalizeAndCleanup, text),
	}, nil
}

// Pop builds a removal query. Popped text is normalized only, so that any
// indexed term (stop-word or not) can be popped back out.
func Pop(collection, bucket, object, text string) (Query, error) {
	item, err := store.NewItemObject(collection, bucket, object)
	if err != nil {
		return Query{}, err
	}

	return Query{
		Type:  TypePop,
		Item:  item,
		Lexer: lexer.New(lexer.NormalizeOnly, text),
	}, nil
}

// Count builds a depth-dispatched count query; bucket and object may be
// empty for the shallower counts.
func Count(collection, bucket, object string) (Query, error) {
	var (
		storeItem store.Item
		err       error
	)

	switch {
	case bucket != "" && object != "":
		storeItem, err = store.NewItemObject(collection, bucket, object)
	case bucket != "":
		storeItem, err = store.NewItemBucket(collection, bucket)
	default:
		storeItem, err = store.NewItemCollection(collection)
	}

	if err != nil {
		return Query{}, err
	}

	return Query{Type: TypeCount, Item: storeItem}, nil
}

// FlushC builds a collection erase query.
func FlushC(collection string) (Query, error) {
	item, err := store.NewItemCollection(collection)
	if err != nil {
		return Query{}, err
	}

	return Query{Type: TypeFlushC, Item: item}, nil
}

// FlushB builds a bucket erase query.
func FlushB(collection, bucket string) (Query, error) {
	item, err := store.NewItemBucket(collection, bucket)
	if err != nil {
		return Query{}, err
	}

	return Query{Type: TypeFlushB, Item: item}, nil
}

// FlushO builds an object flush query.
func FlushO(collection, bucket, object string) (Query, error) {
	item, err := store.NewItemObject(collection, bucket, object)
	if err != nil {
		return Query{}, err
	}

	return Query{Type: TypeFlushO, Item: item}, nil
}
