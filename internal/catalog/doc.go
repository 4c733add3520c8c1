// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog holds the platform defaults for every configuration key.
//
// A Catalog is built once at process start and never mutated afterwards, so
// it is safe for concurrent use without locking. Each Field ties a dotted
// configuration key ("chat.maxMessageLength") to the storage column of the
// wide application row ("chat_max_message_length"), its value type, its
// default and its validation bounds.
//
// The catalog is also the source of truth for the storage schema: VerifyModel
// and VerifyColumns fail with ErrSchema when the application row type or the
// live database table has a column the catalog does not know about (or the
// other way round). Both checks are meant to run at startup.
package catalog
