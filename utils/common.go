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
 *  common.go - Funcions bàsiques.
 *
 */

package utils;

import (
  "fmt"
  "io"
  "os"

  "github.com/dustin/go-humanize"
)

/************/
/* FUNCIONS */
/************/

func NumBytesToStr(num_bytes uint64) string {
  return humanize.IBytes ( num_bytes )
} // end NumBytesToStr


// Eixida per als avisos. Es pot canviar en els tests.
var WarningOutput io.Writer= os.Stderr

func Warning(format string, args ...any) {
  fmt.Fprintf ( WarningOutput, "[WW] " )
  fmt.Fprintf ( WarningOutput, format, args... )
  fmt.Fprintf ( WarningOutput, "\n" )
}
