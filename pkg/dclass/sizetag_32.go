//go:build dcsizetag32

/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import "encoding/binary"

// SizeTag is the length prefix of variable length values.
type SizeTag = uint32

// Size of length prefix in bytes.
const SizeTagSize = 4

func putSizeTag(b []byte, v SizeTag) { binary.LittleEndian.PutUint32(b, v) }

func sizeTag(b []byte) SizeTag { return binary.LittleEndian.Uint32(b) }
