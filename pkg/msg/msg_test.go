package msg

import (
	"errors"
	"testing"
)

func TestGetMessage(t *testing.T) {
	if err := Load([]byte("lookup:\n  start: \"Lookup {0} started in {1}\"\n  failed: \"Lookup failed: {0}\"\n")); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		name string
		key  string
		args []interface{}
		want string
	}{
		{name: "primitive args", key: "lookup.start", args: []interface{}{"Seoul", "ko"}, want: "Lookup Seoul started in ko"},
		{name: "error arg", key: "lookup.failed", args: []interface{}{errors.New("boom")}, want: "Lookup failed: boom"},
		{name: "struct arg", key: "lookup.failed", args: []interface{}{struct {
			City string `json:"city"`
		}{City: "Paris"}}, want: `Lookup failed: {"city":"Paris"}`},
		{name: "missing key", key: "lookup.unknown", want: "Message not found: lookup.unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.key, tt.args...); got != tt.want {
				t.Errorf("GetMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
