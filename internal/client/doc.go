// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal page, the background receipt worker and resource
// cleanup into a single process lifecycle.
package client
