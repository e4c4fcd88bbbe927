package shm

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Tag names the service emits as sequences even when a single element is
// present.
var arrayTags = map[string]bool{
	"barcode":             true,
	"orderLine":           true,
	"additionalInsurance": true,
	"infoDistributed":     true,
	"infoPugo":            true,
}

// Tag names whose text content decodes to an integer.
var integerTags = map[string]bool{
	"totalPrice": true,
}

// Decode flattens an element's children into a map [Value], applying the
// service's coercion rules: nil="true" becomes an explicit null, the text
// "true"/"false" becomes a boolean, known integer tags are parsed as
// numbers, known array tags and repeated sibling names accumulate into
// lists, and everything else stays a string. Elements with children
// recurse into nested maps; attributes are kept under "@"-prefixed keys.
func Decode(el *etree.Element) Value {
	var entries []Entry

	for _, child := range el.ChildElements() {
		key := child.Tag
		val := decodeElement(child)

		idx := -1
		for i, e := range entries {
			if e.Key == key {
				idx = i
				break
			}
		}

		switch {
		case idx < 0 && arrayTags[key]:
			entries = append(entries, Entry{Key: key, Value: ListValue([]Value{val})})
		case idx < 0:
			entries = append(entries, Entry{Key: key, Value: val})
		default:
			// Repeated sibling: promote to a list.
			existing := entries[idx].Value
			if existing.Kind() == KindList {
				entries[idx].Value = ListValue(append(existing.Items(), val))
			} else {
				entries[idx].Value = ListValue([]Value{existing, val})
			}
		}
	}

	return MapValue(entries)
}

func decodeElement(el *etree.Element) Value {
	if nilAttr := el.SelectAttr("nil"); nilAttr != nil && nilAttr.Value == "true" {
		return Null()
	}

	entries := attrEntries(el)

	if len(el.ChildElements()) > 0 {
		return MapValue(append(entries, Decode(el).Entries()...))
	}

	scalar := decodeText(el.Tag, strings.TrimSpace(el.Text()))
	if len(entries) == 0 {
		return scalar
	}
	if scalar.Kind() != KindString || scalar.String() != "" {
		entries = append(entries, Entry{Key: "#text", Value: scalar})
	}
	return MapValue(entries)
}

// attrEntries collects non-namespace attributes under "@"-prefixed keys,
// applying the same text coercion rules as element content.
func attrEntries(el *etree.Element) []Entry {
	var entries []Entry
	for _, attr := range el.Attr {
		if attr.Space == "xmlns" || attr.Key == "xmlns" {
			continue
		}
		entries = append(entries, Entry{Key: "@" + attr.Key, Value: decodeText(attr.Key, attr.Value)})
	}
	return entries
}

func decodeText(tag, text string) Value {
	switch {
	case text == "true":
		return BoolValue(true)
	case text == "false":
		return BoolValue(false)
	case integerTags[tag]:
		n, err := strconv.Atoi(text)
		if err != nil {
			return StringValue(text)
		}
		return IntValue(n)
	default:
		return StringValue(text)
	}
}
