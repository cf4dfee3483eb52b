package entity

// Document is a schema-less record as stored in a collection. Menu entries,
// reviews, cart items and user profiles travel through the API as documents
// and are returned verbatim.
type Document map[string]any

// String returns the string value under key, or "" when absent or not a string.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Clone returns a shallow copy so callers can adjust top-level fields
// without mutating the request body.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
