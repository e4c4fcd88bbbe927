// Copyright (c) 2024 The bpost-api-library Authors
// SPDX-License-Identifier: BSD-2-Clause

/*
Package bpost is the client facade for the bpost shipping manager
service. Each operation composes a URL and the versioned media-type
headers, signs the request with HTTP Basic credentials and hands it to a
transport.Caller; XML encoding and decoding is delegated to the model
packages.

# Usage

	client := bpost.NewClient("107423", "passphrase")

	o, _ := order.NewOrder("order-0001")
	// ... build boxes ...
	if err := client.CreateOrReplaceOrder(ctx, o); err != nil {
	    // InvalidSelectionError, InvalidResponseError or a transport error
	}

	labels, err := client.CreateLabelForOrder(ctx, "order-0001", format, false, true)

Every operation is one network round trip. There is no retry policy and
no caching; a failed call surfaces immediately.
*/
package bpost
