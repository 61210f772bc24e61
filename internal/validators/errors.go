// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrDuplicateItems = errors.New("Items contains duplicate entries")
	ErrBlankItem      = errors.New("Items contains an empty entry")
	ErrBlankDate      = errors.New("cannot be blank")
)
