// Copyright (c) 2024 The bpost-api-library Authors
// SPDX-License-Identifier: BSD-2-Clause

/*
Package shm provides wire-level helpers for the bpost Shipping Manager
deep-integration XML dialect.

It carries the versioned namespace constants, the prefix-qualified tag name
convention used throughout the schema (tns, common, national,
international), and a generic element decoder that flattens responses
without a dedicated model (product configuration, raw label metadata) into
a tagged dynamic [Value].

# Namespaces

Every request document declares the full namespace set once, on its root
element:

	xmlns="http://schema.post.be/shm/deepintegration/v3/national"
	xmlns:common="http://schema.post.be/shm/deepintegration/v3/common"
	xmlns:tns="http://schema.post.be/shm/deepintegration/v3/"
	xmlns:international="http://schema.post.be/shm/deepintegration/v3/international"
	xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
	xsi:schemaLocation="http://schema.post.be/shm/deepintegration/v3/"

Child elements are qualified by prefix token only; see [Prefixed].

# Generic Decoding

Responses the client does not map to dedicated types are decoded with
[Decode], which applies the service's coercion rules: "true"/"false"
become booleans, a fixed set of tag names decode as integers, another
fixed set always accumulate into lists, and nil="true" marks an explicit
null. Consumers pattern-match on [Value.Kind].
*/
package shm
