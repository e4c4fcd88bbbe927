// Copyright (c) 2024 The bpost-api-library Authors
// SPDX-License-Identifier: BSD-2-Clause

/*
Package order models the bpost Shipping Manager order domain and its two
canonical XML transforms.

An [Order] owns an ordered list of [Line] values and [Box] parcels. Each
box carries exactly one shipment descriptor: a national variant ([AtHome],
[AtBpost], [At247]) or an international variant ([International],
[AtIntlPugo]). Variants carry a product code validated against a fixed
per-variant allow-list, an ordered list of delivery [Option] values and
family-specific fields.

# Serialization

[Order.ToXMLDocument] walks the aggregate and produces the namespaced
request document. Child element order is fixed per entity to match the
schema's declared sequence; unset fields are omitted entirely. Option
lists are the one place caller order is significant: options serialize in
insertion order inside their <options> container.

# Deserialization

[OrderFromXML] rebuilds an aggregate from a fetch response. Concrete
shipment and option variants are selected by the tag name of the child
element present, through static lookup tables; a tag with no mapped type
fails with shm.UnknownVariantError.

# Validation

Setters for enum- or length-constrained fields validate synchronously and
fail before any network call. Status and language values are uppercased
before comparison. The single documented exception is
[ParcelContent.SetItemDescription], which truncates instead of rejecting.
*/
package order
