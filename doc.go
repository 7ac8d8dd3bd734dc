// Package lumpctl holds the domain types shared by the lumpctl command-line
// client: device and lump identifiers, lump metadata, the closed set of
// commands and the error taxonomy.
//
// lumpctl talks to a remote lump store over gRPC. A lump is the atomic unit of
// stored data and is addressed by a 128-bit LumpID on a named device.
//
// # Key Components
//
//   - DeviceID / LumpID: identifier codec (ParseDeviceID, ParseLumpID)
//   - Command: List, Get, Head, Delete
//   - ArgumentError / TransportError: fatal error categories reported by the CLI
//
// # Example Usage
//
//	id, err := lumpctl.ParseLumpID("2a")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id) // 0000000000000000000000000000002a
//
// See the engine package for the execution engine, lumprpc for the wire client
// and clientcli for the command dispatcher.
package lumpctl
