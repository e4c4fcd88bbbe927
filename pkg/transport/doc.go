// Copyright (c) 2024 The bpost-api-library Authors
// SPDX-License-Identifier: BSD-2-Clause

/*
Package transport carries requests to the shipping manager service over
HTTPS with TLS 1.2/1.3 support.

The Caller interface is the seam between the API client and the network:
the client composes method, URL, headers and body, and any Caller
implementation moves them. Tests substitute an in-memory Caller;
production code uses HTTPCaller.

A Caller never interprets HTTP status codes. Non-2xx responses are
returned intact so the API layer can map them to domain errors using
both the status and the body text.

# TLS Configuration

The package recommends TLS 1.3 with fallback to TLS 1.2:

	config := transport.DefaultHTTPConfig()
	// MinTLSVersion: TLS 1.2
	// MaxTLSVersion: TLS 1.3

For TLS 1.2, the following cipher suites are recommended:
  - TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384
  - TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256
  - TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384
  - TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256

# Usage

	caller := transport.NewHTTPCaller(nil)
	resp, err := caller.Call(ctx, http.MethodGet, url, headers, nil)
*/
package transport
