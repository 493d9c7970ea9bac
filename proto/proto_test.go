// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package proto

import (
	"bytes"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestCodecRoundTripReply(t *testing.T) {
	in := &Reply{ReqID: 42, YangData: `{"System": {}}`, Errors: ""}

	wire, err := Codec{}.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	out := new(Reply)
	if err := (Codec{}).Unmarshal(wire, out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestCodecRoundTripEditConfigArgs(t *testing.T) {
	in := &EditConfigArgs{
		ReqID:     7,
		YangPath:  `{"System": {"name": "nx-sw-01"}}`,
		Operation: "merge",
		SessionID: 12345,
		Target:    "running",
		DefOp:     "merge",
		ErrorOp:   "roll-back",
	}

	wire, err := Codec{}.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	out := new(EditConfigArgs)
	if err := (Codec{}).Unmarshal(wire, out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestZeroValuesOmitted(t *testing.T) {
	wire, err := Codec{}.Marshal(&GetOperArgs{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(wire) != 0 {
		t.Errorf("zero message encoded to %d bytes, want 0", len(wire))
	}
}

func TestUnknownFieldsSkipped(t *testing.T) {
	// A Reply with an extra field the decoder does not know about; decoders
	// must skip it to stay compatible with newer proto revisions.
	var wire []byte
	wire = protowire.AppendTag(wire, 1, protowire.VarintType)
	wire = protowire.AppendVarint(wire, 9)
	wire = protowire.AppendTag(wire, 99, protowire.BytesType)
	wire = protowire.AppendString(wire, "future field")
	wire = protowire.AppendTag(wire, 2, protowire.BytesType)
	wire = protowire.AppendString(wire, "{}")

	out := new(Reply)
	if err := (Codec{}).Unmarshal(wire, out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.ReqID != 9 || out.YangData != "{}" {
		t.Errorf("decoded %+v, want ReqID 9 and YangData {}", out)
	}
}

func TestMdtDialoutArgsRoundTrip(t *testing.T) {
	in := &MdtDialoutArgs{ReqID: 3, Data: []byte{0x01, 0x02, 0x00, 0xff}, TotalSize: 4096}

	wire, err := Codec{}.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	out := new(MdtDialoutArgs)
	if err := (Codec{}).Unmarshal(wire, out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.ReqID != in.ReqID || out.TotalSize != in.TotalSize || !bytes.Equal(out.Data, in.Data) {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestCodecRejectsForeignTypes(t *testing.T) {
	if _, err := (Codec{}).Marshal("not a message"); err == nil {
		t.Error("Marshal accepted a non-message type")
	}
	if err := (Codec{}).Unmarshal(nil, "not a message"); err == nil {
		t.Error("Unmarshal accepted a non-message type")
	}
}

func TestTruncatedWireFails(t *testing.T) {
	in := &Reply{ReqID: 1, YangData: "{}"}
	wire, err := Codec{}.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	out := new(Reply)
	if err := (Codec{}).Unmarshal(wire[:len(wire)-1], out); err == nil {
		t.Error("Unmarshal accepted truncated input")
	}
}
