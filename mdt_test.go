// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nxos

import (
	"bytes"
	"context"
	"io"
	"testing"

	"google.golang.org/grpc/metadata"

	"github.com/netascode/go-nxos/proto"
)

func TestMDTAssembleSelfContained(t *testing.T) {
	s := NewMDTServer()

	data, err := s.assemble(&proto.MdtDialoutArgs{ReqID: 1, Data: []byte("telemetry")})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !bytes.Equal(data, []byte("telemetry")) {
		t.Errorf("data = %q, want %q", data, "telemetry")
	}
}

func TestMDTAssembleMatchingTotalSize(t *testing.T) {
	s := NewMDTServer()

	data, err := s.assemble(&proto.MdtDialoutArgs{ReqID: 1, Data: []byte("full"), TotalSize: 4})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if string(data) != "full" {
		t.Errorf("data = %q, want %q", data, "full")
	}
}

func TestMDTAssembleChunked(t *testing.T) {
	s := NewMDTServer()

	data, err := s.assemble(&proto.MdtDialoutArgs{ReqID: 1, Data: []byte("tele"), TotalSize: 9})
	if err != nil {
		t.Fatalf("first chunk: %v", err)
	}
	if data != nil {
		t.Fatalf("first chunk delivered early: %q", data)
	}

	data, err = s.assemble(&proto.MdtDialoutArgs{ReqID: 1, Data: []byte("metry"), TotalSize: 9})
	if err != nil {
		t.Fatalf("second chunk: %v", err)
	}
	if string(data) != "telemetry" {
		t.Errorf("assembled = %q, want %q", data, "telemetry")
	}

	// The buffer must be released once the message completes.
	if len(s.chunks) != 0 {
		t.Errorf("%d reassembly buffers left after completion, want 0", len(s.chunks))
	}
}

func TestMDTAssembleInterleaved(t *testing.T) {
	s := NewMDTServer()

	if _, err := s.assemble(&proto.MdtDialoutArgs{ReqID: 1, Data: []byte("aa"), TotalSize: 4}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.assemble(&proto.MdtDialoutArgs{ReqID: 2, Data: []byte("bb"), TotalSize: 4}); err != nil {
		t.Fatal(err)
	}

	data, err := s.assemble(&proto.MdtDialoutArgs{ReqID: 2, Data: []byte("BB"), TotalSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "bbBB" {
		t.Errorf("message 2 = %q, want %q", data, "bbBB")
	}

	data, err = s.assemble(&proto.MdtDialoutArgs{ReqID: 1, Data: []byte("AA"), TotalSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "aaAA" {
		t.Errorf("message 1 = %q, want %q", data, "aaAA")
	}
}

func TestMDTAssembleOversizedChunk(t *testing.T) {
	s := NewMDTServer()

	_, err := s.assemble(&proto.MdtDialoutArgs{ReqID: 1, Data: []byte("too long"), TotalSize: 3})
	if err == nil {
		t.Fatal("assemble accepted chunk larger than total size")
	}
}

func TestMDTAssembleOverrun(t *testing.T) {
	s := NewMDTServer()

	if _, err := s.assemble(&proto.MdtDialoutArgs{ReqID: 1, Data: []byte("abc"), TotalSize: 5}); err != nil {
		t.Fatal(err)
	}
	_, err := s.assemble(&proto.MdtDialoutArgs{ReqID: 1, Data: []byte("defg"), TotalSize: 5})
	if err == nil {
		t.Fatal("assemble accepted accumulation past total size")
	}
	if len(s.chunks) != 0 {
		t.Error("reassembly buffer not released after overrun")
	}
}

func TestMDTDeliverCallbacks(t *testing.T) {
	s := NewMDTServer()

	var first, second []byte
	s.OnMessage(func(data []byte) { first = data })
	s.OnMessage(func(data []byte) { second = data })

	s.deliver([]byte("payload"))

	if string(first) != "payload" || string(second) != "payload" {
		t.Errorf("callbacks received %q and %q, want %q for both", first, second, "payload")
	}
}

// fakeDialoutStream scripts the device side of one MdtDialout stream and
// records the server's acknowledgements.
type fakeDialoutStream struct {
	incoming []*proto.MdtDialoutArgs
	acks     []*proto.MdtDialoutArgs
}

func (s *fakeDialoutStream) RecvMsg(m any) error {
	if len(s.incoming) == 0 {
		return io.EOF
	}
	*(m.(*proto.MdtDialoutArgs)) = *s.incoming[0]
	s.incoming = s.incoming[1:]
	return nil
}

func (s *fakeDialoutStream) SendMsg(m any) error {
	ack := *(m.(*proto.MdtDialoutArgs))
	s.acks = append(s.acks, &ack)
	return nil
}

func (s *fakeDialoutStream) SetHeader(metadata.MD) error  { return nil }
func (s *fakeDialoutStream) SendHeader(metadata.MD) error { return nil }
func (s *fakeDialoutStream) SetTrailer(metadata.MD)       {}
func (s *fakeDialoutStream) Context() context.Context     { return context.Background() }

func TestMDTDialoutAcknowledges(t *testing.T) {
	s := NewMDTServer()

	var received [][]byte
	s.OnMessage(func(data []byte) { received = append(received, data) })

	stream := &fakeDialoutStream{incoming: []*proto.MdtDialoutArgs{
		{ReqID: 10, Data: []byte("one")},
		{ReqID: 11, Data: []byte("tw"), TotalSize: 3},
		{ReqID: 11, Data: []byte("o"), TotalSize: 3},
	}}

	if err := s.dialout(stream); err != nil {
		t.Fatalf("dialout: %v", err)
	}

	if len(received) != 2 || string(received[0]) != "one" || string(received[1]) != "two" {
		t.Errorf("received messages %q, want [one two]", received)
	}
	if len(stream.acks) != 3 {
		t.Fatalf("got %d acks, want one per chunk (3)", len(stream.acks))
	}
	wantIDs := []int64{10, 11, 11}
	for i, ack := range stream.acks {
		if ack.ReqID != wantIDs[i] {
			t.Errorf("ack %d ReqID = %d, want %d", i, ack.ReqID, wantIDs[i])
		}
	}
}
