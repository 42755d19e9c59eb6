// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WillReference is the opaque pointer (an IPFS content identifier) to the
// off-chain encrypted will. The contract owns it; the client only mirrors
// the most recent value it read or wrote.
type WillReference struct {
	CID string
}
