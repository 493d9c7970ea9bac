// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

import (
	"testing"
)

func TestCompileXPath(t *testing.T) {
	tests := []struct {
		name      string
		xpath     string
		namespace string
		want      string
		wantErr   bool
	}{
		{
			name:      "single element",
			xpath:     "System",
			namespace: "ns1",
			want:      `{"System":{},"namespace":"ns1"}`,
		},
		{
			name:      "nested path",
			xpath:     "a/b/c",
			namespace: "ns1",
			want:      `{"a":{"b":{"c":{}}},"namespace":"ns1"}`,
		},
		{
			name:      "prefixed container",
			xpath:     "Cisco-NX-OS-device:System/name",
			namespace: "http://cisco.com/ns/yang/cisco-nx-os-device",
			want:      `{"Cisco-NX-OS-device:System":{"name":{}},"namespace":"http://cisco.com/ns/yang/cisco-nx-os-device"}`,
		},
		{
			name:      "leading slash keeps empty element",
			xpath:     "/a",
			namespace: "ns1",
			want:      `{"":{"a":{}},"namespace":"ns1"}`,
		},
		{
			name:      "missing namespace fails",
			xpath:     "a/b",
			namespace: "",
			wantErr:   true,
		},
		{
			name:      "missing namespace fails even for empty path",
			xpath:     "",
			namespace: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompileXPath(tt.xpath, tt.namespace)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CompileXPath(%q, %q) = %q, want error", tt.xpath, tt.namespace, got)
				}
				if !IsValidation(err) {
					t.Errorf("error = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CompileXPath(%q, %q) unexpected error: %v", tt.xpath, tt.namespace, err)
			}
			if got != tt.want {
				t.Errorf("CompileXPath(%q, %q) = %q, want %q", tt.xpath, tt.namespace, got, tt.want)
			}
		})
	}
}

func TestCompileXPathDeterministic(t *testing.T) {
	first, err := CompileXPath("a/b/c", "ns1")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := CompileXPath("a/b/c", "ns1")
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("compilation not deterministic: %q then %q", first, again)
		}
	}
}
