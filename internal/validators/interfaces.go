// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it is turned into a contract
// call.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Inject a Validator into the services that submit transactions.
//  2. Call Validate with context, value, and optional field names.
//  3. Reuse the same Validator in the view to reject input before any call.
//
// Only syntax is checked here. Share accounting, identity rules and caller
// permissions belong to the contract.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
