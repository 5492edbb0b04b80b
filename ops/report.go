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
 *  report.go - Resultat d'una execució per lots.
 *
 */

package ops

import (
  "fmt"
  "io"

  "github.com/adriagipas/binmerge/merge"
  "github.com/adriagipas/binmerge/utils"
)


/*********/
/* TIPUS */
/*********/

type SheetResult struct {
  CuePath string
  Result  *merge.Result // nil si ha fallat
  Err     error
}

type Report struct {
  Results []SheetResult // En l'ordre de les entrades
}


/************/
/* FUNCIONS */
/************/

func (self *Report) Failed() []SheetResult {

  ret:= []SheetResult{}
  for _,r:= range self.Results {
    if r.Err != nil {
      ret= append(ret,r)
    }
  }

  return ret
  
} // end Failed


// Els errors es mostren sempre com a avisos, la resta sols si no és
// quiet.
func (self *Report) Print( out io.Writer, quiet bool ) {

  failed:= 0
  for _,r:= range self.Results {
    if r.Err != nil {
      failed++
      utils.Warning ( "%s: %s", r.CuePath, r.Err )
    } else if !quiet {
      fmt.Fprintf ( out, "Done: %s (%s)\n", r.Result.BinPath,
        utils.NumBytesToStr ( uint64(r.Result.Bytes) ) )
    }
  }
  if failed == 0 {
    if !quiet {
      fmt.Fprintln ( out, "Finished successfully." )
    }
  } else {
    fmt.Fprintf ( out, "Finished with errors (%d of %d failed).\n",
      failed, len(self.Results) )
  }
  
} // end Print
