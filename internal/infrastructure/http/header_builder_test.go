package httpinfra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestMergeHeaders_ExtraWins(t *testing.T) {
	out := MergeHeaders(map[string]string{"A": "1", "B": "2"}, map[string]string{"B": "3"})
	assert.Equal(t, map[string]string{"A": "1", "B": "3"}, out)
}

func TestBuildHeaders_KeepsBothSets(t *testing.T) {
	headers, dropped := BuildHeaders(
		map[string]string{"Content-Type": "multipart/form-data; boundary=x"},
		map[string]string{"Authorization": "Bearer t", "X-Request-ID": "r1"},
	)

	assert.Empty(t, dropped)
	assert.Equal(t, map[string]string{
		"Content-Type":  "multipart/form-data; boundary=x",
		"Authorization": "Bearer t",
		"X-Request-ID":  "r1",
	}, headers)
}

func TestBuildHeaders_DropsReservedFromProvider(t *testing.T) {
	headers, dropped := BuildHeaders(
		map[string]string{"Content-Type": "multipart/form-data; boundary=x"},
		map[string]string{"content-type": "application/json", "Authorization": "Bearer t"},
	)

	assert.Equal(t, []string{"content-type"}, dropped)
	assert.Equal(t, "multipart/form-data; boundary=x", headers["Content-Type"])
	assert.NotContains(t, headers, "content-type")
	assert.Equal(t, "Bearer t", headers["Authorization"])
}

func TestBuildHeaders_ProviderHeadersPreserved_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfDistinct(
			rapid.StringMatching(`X-[A-Z][a-z]{1,8}`), func(s string) string { return s },
		).Draw(t, "keys")
		provided := map[string]string{}
		for _, k := range keys {
			provided[k] = rapid.String().Draw(t, k)
		}
		body := map[string]string{"Content-Type": "multipart/form-data; boundary=b"}

		headers, dropped := BuildHeaders(body, provided)

		if len(dropped) != 0 {
			t.Fatalf("unexpected dropped headers %v", dropped)
		}
		if headers["Content-Type"] != body["Content-Type"] {
			t.Fatalf("content type overwritten: %q", headers["Content-Type"])
		}
		for k, v := range provided {
			if headers[k] != v {
				t.Fatalf("header %s = %q, want %q", k, headers[k], v)
			}
		}
		if len(headers) != len(provided)+1 {
			t.Fatalf("expected %d headers, got %d", len(provided)+1, len(headers))
		}
	})
}
