// Copyright (c) 2024 The bpost-api-library Authors
// SPDX-License-Identifier: BSD-2-Clause

// Package productconfig exposes the product configuration document the
// service publishes: which delivery methods and products an account may
// use, with their prices. The document has no stable dedicated schema,
// so it is decoded through the generic shm value tree and consumed ad
// hoc.
package productconfig

import (
	"errors"

	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
)

// ProductConfiguration wraps the generically decoded configuration
// document.
type ProductConfiguration struct {
	value shm.Value
}

// FromXMLBytes parses a product configuration response.
func FromXMLBytes(raw []byte) (*ProductConfiguration, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("productconfig: empty XML document")
	}
	return &ProductConfiguration{value: shm.Decode(root)}, nil
}

// Raw returns the decoded value tree.
func (p *ProductConfiguration) Raw() shm.Value { return p.value }

// DeliveryMethods returns the deliveryMethod entries, one value per
// method, or nil when the document carries none.
func (p *ProductConfiguration) DeliveryMethods() []shm.Value {
	methods, ok := p.value.Get("deliveryMethod")
	if !ok {
		return nil
	}
	if methods.Kind() == shm.KindList {
		return methods.Items()
	}
	return []shm.Value{methods}
}
