// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawable

import (
	"fmt"

	"github.com/gogpu/scenery"
)

// assertf reports a programming error. With the scenerydebug build tag it
// panics; otherwise it logs a warning and the caller carries on without
// writing.
func assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if debugAssertions {
		panic("drawable: " + msg)
	}
	scenery.Logger().Warn("drawable: assertion failed", "detail", msg)
}
