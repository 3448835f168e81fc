/* extremum - lowest and highest value selection
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import "errors"

// Error definitions
var (
	ErrArgumentCount = errors.New("wrong number of arguments")
	ErrBadLiteral    = errors.New("integer literal could not be parsed")
	ErrBadSuffix     = errors.New("unknown integer type suffix")
	ErrBadMode       = errors.New("selection mode must be lowest or highest")
)
