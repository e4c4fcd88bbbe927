package shm

// Kind discriminates the dynamic value variants produced by [Decode].
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindInt
	KindMap
	KindList
)

// Value is a tagged dynamic value: null, string, bool, int, an ordered
// mapping of tag name to Value, or a list of Values. It is the decode
// result for responses without a dedicated model; consumers switch on
// [Value.Kind] exhaustively.
type Value struct {
	kind    Kind
	str     string
	num     int
	boolean bool
	entries []Entry
	items   []Value
}

// Entry is one key/value pair of a map Value. Entries preserve document
// order.
type Entry struct {
	Key   string
	Value Value
}

// Null returns the explicit null value.
func Null() Value { return Value{kind: KindNull} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{kind: KindBool, boolean: b} }

// IntValue wraps an int.
func IntValue(n int) Value { return Value{kind: KindInt, num: n} }

// MapValue wraps an ordered entry list.
func MapValue(entries []Entry) Value { return Value{kind: KindMap, entries: entries} }

// ListValue wraps a value sequence.
func ListValue(items []Value) Value { return Value{kind: KindList, items: items} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the explicit null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// String returns the string payload, or "" for other kinds.
func (v Value) String() string { return v.str }

// Int returns the integer payload, or 0 for other kinds.
func (v Value) Int() int { return v.num }

// Bool returns the boolean payload, or false for other kinds.
func (v Value) Bool() bool { return v.boolean }

// Entries returns the ordered entries of a map value.
func (v Value) Entries() []Entry { return v.entries }

// Items returns the elements of a list value.
func (v Value) Items() []Value { return v.items }

// Get looks up the value stored under key in a map value. The second
// return is false when v is not a map or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of entries or items, or 0 for scalar kinds.
func (v Value) Len() int {
	switch v.kind {
	case KindMap:
		return len(v.entries)
	case KindList:
		return len(v.items)
	default:
		return 0
	}
}
