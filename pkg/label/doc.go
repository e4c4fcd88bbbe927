// Copyright (c) 2024 The bpost-api-library Authors
// SPDX-License-Identifier: BSD-2-Clause

// Package label models the printable shipping labels the service
// returns after an order is created: read-only Label records carrying
// barcodes and base64-encoded PDF or image payloads, plus the
// LabelFormat value used to pick a paper size.
package label
