package httpinfra

import "net/http"

// MergeHeaders copies base and then extra into a new map. Keys from extra
// win on collision.
func MergeHeaders(base map[string]string, extra map[string]string) map[string]string {
	out := map[string]string{}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// ReservedHeaders are owned by the request body and never taken from a
// header provider.
var ReservedHeaders = []string{"Content-Type", "Content-Length"}

// BuildHeaders combines the body headers with provider headers. Provider
// values for reserved headers are dropped and reported back so the caller
// can log them.
func BuildHeaders(body map[string]string, provided map[string]string) (headers map[string]string, dropped []string) {
	clean := make(map[string]string, len(provided))
	for k, v := range provided {
		if isReserved(k) {
			dropped = append(dropped, k)
			continue
		}
		clean[k] = v
	}
	return MergeHeaders(clean, body), dropped
}

func isReserved(key string) bool {
	canonical := http.CanonicalHeaderKey(key)
	for _, r := range ReservedHeaders {
		if canonical == r {
			return true
		}
	}
	return false
}
