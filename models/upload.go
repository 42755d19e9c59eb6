// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CIDSource tells which part of a gateway response yielded the content
// identifier.
type CIDSource string

const (
	// CIDFromJSON means the identifier came from the "Hash" field of the
	// gateway's JSON reply.
	CIDFromJSON CIDSource = "json"
	// CIDFromLegacyPattern means the identifier was scraped from the raw
	// body with the Qm-prefix pattern.
	CIDFromLegacyPattern CIDSource = "legacy-pattern"
)

// UploadResult describes a file stored on the content-addressed network.
type UploadResult struct {
	CID      string
	FileName string
	Size     int64
	Source   CIDSource
	// Sealed is set when the file was passphrase-sealed before upload.
	Sealed bool
}
