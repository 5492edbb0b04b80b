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
 *  sheet.go - Genera el full CUE del fitxer BIN fusionat.
 */

package merge

import (
  "fmt"
  "strconv"
  "strings"

  "github.com/adriagipas/binmerge/cdread"
)




/***********/
/* OPTIONS */
/***********/

type Options struct {

  // Si és cert cada fitxer avança la posició amb la grandària de
  // sector del seu primer track. Per defecte s'utilitza la del disc.
  PerFileBlockSize bool
  
}


func (self *Options) blockSize( disc *cdread.Disc, file *cdread.File ) int {

  if self != nil && self.PerFileBlockSize {
    if ret:= file.BlockSize (); ret > 0 {
      return ret
    }
  }
  
  return disc.BlockSize
  
} // end blockSize




/*********/
/* SHEET */
/*********/

// Dígits de count+1, com a mínim 2.
func padWidth( count int ) int {

  ret:= len(strconv.Itoa ( count+1 ))
  if ret < 2 { ret= 2 }

  return ret
  
} // end padWidth


// Els INDEX de cada fitxer es desplacen amb els sectors de tots els
// fitxers anteriors.
func RenderSheet(

  disc      *cdread.Disc,
  base_name string,
  opts      *Options,
  
) string {

  var sb strings.Builder
  fmt.Fprintf ( &sb, "FILE \"%s.bin\" BINARY\n", base_name )
  
  track_width:= padWidth ( disc.NumTracks )
  var sec_pos int64= 0
  for _,file:= range disc.Files {
    for _,track:= range file.Tracks {
      fmt.Fprintf ( &sb, "  TRACK %0*d %s\n",
        track_width, track.Number, track.Type.Name () )
      index_width:= padWidth ( len(track.Indexes) )
      for _,ind:= range track.Indexes {
        fmt.Fprintf ( &sb, "    INDEX %0*d %s\n", index_width, ind.Id,
          cdread.SectorsToStamp ( sec_pos + ind.Offset ) )
      }
    }
    // Sense cap track no hi ha grandària de bloc
    if bs:= opts.blockSize ( disc, file ); bs > 0 {
      sec_pos+= file.Size/int64(bs)
    }
  }

  return sb.String ()
  
} // end RenderSheet
