package headers

import (
	"net/textproto"
	"strings"
)

// ParseHeaders converts "Key: Value" strings into a map with canonical keys.
// Entries without a colon or with an empty key are dropped.
func ParseHeaders(h []string) map[string]string {
	m := make(map[string]string)
	for _, hdr := range h {
		parts := strings.SplitN(hdr, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		m[textproto.CanonicalMIMEHeaderKey(key)] = strings.TrimSpace(parts[1])
	}
	return m
}

// Merge returns a new map holding base overlaid with each override in order.
// Keys are canonicalized so "user-agent" replaces "User-Agent".
func Merge(base map[string]string, overrides ...map[string]string) map[string]string {
	out := make(map[string]string, len(base))
	for k, v := range base {
		out[textproto.CanonicalMIMEHeaderKey(k)] = v
	}
	for _, o := range overrides {
		for k, v := range o {
			out[textproto.CanonicalMIMEHeaderKey(k)] = v
		}
	}
	return out
}
