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
 * along with adriagipas/binmerge.  If not, see <https://www.gnu.org/licenses/>.
 */
/*
 *  main.go - Utilitat per fusionar els fitxers BIN d'un full CUE en
 *            un sol fitxer.
 */

package main;

import (
  "log"
  
  "github.com/adriagipas/binmerge/ops"
  "github.com/adriagipas/binmerge/utils"
)

func main() {

  // Inicialitza log
  log.SetPrefix ( "[binmerge] " )
  log.SetFlags ( 0 )

  // Executa operació
  if args,err := utils.NewArgs(); err == nil {
    switch args.Op {
    case utils.OP_MERGE:
      err= ops.Merge ( args )
    case utils.OP_SHOW:
      err= ops.Show ( args )
    }
    if err != nil {
      log.Fatal ( err )
    }
  } else {
    log.Fatal ( err )
  }
  
}
