// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !scenerydebug

package drawable

const debugAssertions = false
