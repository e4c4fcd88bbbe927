// Copyright (c) 2024 The bpost-api-library Authors
// SPDX-License-Identifier: BSD-2-Clause

/*
Package bpostapi implements a client for the bpost Shipping Manager (SHM)
deep-integration webservice, the XML API used to announce parcels, fetch
orders and retrieve printable labels from the Belgian postal operator.

# Overview

The library models the SHM order domain (orders, boxes, national and
international shipment variants, delivery options, addresses) and provides
the two canonical transforms between that model and the provider's
namespaced XML dialect: serialization for outbound requests and tag-name
dispatched deserialization for responses. The HTTP layer is a thin,
swappable capability so the mapping layer can be exercised without a
network.

# Package Structure

	github.com/beebop1032/bpost-api-library/pkg/bpost         - Client facade: webservice operations
	github.com/beebop1032/bpost-api-library/pkg/order         - Order aggregate and shipment variants
	github.com/beebop1032/bpost-api-library/pkg/label         - Label response models and formats
	github.com/beebop1032/bpost-api-library/pkg/productconfig - Product configuration responses
	github.com/beebop1032/bpost-api-library/pkg/shm           - SHM namespaces and generic XML decoding
	github.com/beebop1032/bpost-api-library/pkg/transport     - HTTP caller capability
	github.com/beebop1032/bpost-api-library/pkg/validate      - Field validators and validation errors

# Quick Start

To announce an order:

	import (
	    "github.com/beebop1032/bpost-api-library/pkg/bpost"
	    "github.com/beebop1032/bpost-api-library/pkg/order"
	)

	ord, _ := order.NewOrder("ref-20240115-001")

	box := order.NewBox()
	atHome, _ := order.NewAtHome(order.ProductBpack24hPro)
	atHome.SetWeight(2000)
	box.SetShipment(atHome)
	ord.AddBox(box)

	client := bpost.NewClient("107423", "passphrase")
	err := client.CreateOrReplaceOrder(ctx, ord)

# Wire Format

Requests and responses are UTF-8 XML in the versioned SHM namespaces
(http://schema.post.be/shm/deepintegration/v3/ and its common, national and
international sub-namespaces), negotiated through vnd.bpost media types.
Authentication is HTTP Basic with base64(accountId:passphrase).

# License

BSD-2-Clause License
*/
package bpostapi
