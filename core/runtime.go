/* extremum - lowest and highest value selection
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

// Version of extremum.
var Version string

// BuildTime contains the timestamp of when the version of extremum was built.
var BuildTime string
