// SPDX-License-Identifier: MIT
// Package: lvlabel/generate
//
// errors.go — sentinel errors for the generate package.

package generate

import "github.com/cockroachdb/errors"

var (
	// ErrBadShape indicates non-positive rows or cols.
	ErrBadShape = errors.New("generate: rows and cols must be > 0")
)
