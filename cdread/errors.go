/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/binmerge.
 *
 * adriagipas/binmerge is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/binmerge is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/binmerge.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  errors.go - Errors del lector de fulls CUE.
 */

package cdread

import "errors"

var (
  ErrInvalidTrackType   = errors.New ( "invalid track type" )
  ErrMalformedTimestamp = errors.New ( "malformed timestamp" )
  ErrMalformedCueLine   = errors.New ( "malformed cue line" )
  ErrSourceFileNotFound = errors.New ( "source file not found" )
)
