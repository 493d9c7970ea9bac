// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

// Package nxos provides a client for the Cisco NX-OS gRPC management agent,
// which exposes YANG-modeled configuration and operational data through the
// gRPCConfigOper service, plus a receiver for NX-OS model-driven telemetry
// dial-out.
//
// # Quick Start
//
// Create a client and query operational data:
//
//	client, err := nxos.NewClient("192.168.1.1",
//	    nxos.Username("admin"),
//	    nxos.Password("secret"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	res, err := client.GetOper(ctx, "Cisco-NX-OS-device:System",
//	    nxos.Namespace("http://cisco.com/ns/yang/cisco-nx-os-device"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.GetValue("System.name").String())
//
// Supplying credential material selects a TLS channel; without it the client
// dials in plaintext:
//
//	client, err := nxos.NewClient("192.168.1.1:50051",
//	    nxos.Username("admin"),
//	    nxos.Password("secret"),
//	    nxos.CredentialsFile("ca.pem"),
//	    nxos.TLSServerOverride("nx-sw-01"),
//	)
//
// # Paths and Payloads
//
// Query operations take a slash-separated YANG container path plus a
// namespace, compiled into the nested JSON the device expects. Callers that
// already hold a complete payload bypass compilation with PathIsPayload:
//
//	res, err := client.Get(ctx, `{"System": {}, "namespace": "http://example/ns"}`,
//	    nxos.PathIsPayload())
//
// EditConfig payloads are preformed JSON; the Body builder constructs them:
//
//	payload, err := nxos.Body{}.
//	    Set("System.name", "nx-sw-01").
//	    String()
//
// # Error Handling
//
// Input problems (bad target, missing namespace, value outside an allowed
// set) surface as *ArgError before any network action; IsValidation
// distinguishes them. Transport and device failures propagate as grpc status
// errors without wrapping, retries or suppression.
//
// # Concurrency
//
// Operations are synchronous and blocking, one RPC per call. A Client has no
// internal locking; share one across goroutines only with external
// serialization, or give each goroutine its own.
//
// # Telemetry
//
// MDTServer accepts gRPCMdtDialout streams from devices, reassembles chunked
// telemetry messages and hands the raw payloads to callbacks:
//
//	server := nxos.NewMDTServer()
//	server.OnMessage(func(data []byte) { ... })
//	lis, _ := net.Listen("tcp", "[::]:50051")
//	log.Fatal(server.Serve(lis))
package nxos
