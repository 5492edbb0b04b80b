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
 *  utils.go - Conversió entre sectors i marques de temps MM:SS:FF.
 */

package cdread

import (
  "fmt"
  "strconv"
  "strings"
)


const SECTORS_PER_SECOND = 75
const SECTORS_PER_MINUTE = 60*SECTORS_PER_SECOND


// Els minuts no es limiten a dos dígits.
func SectorsToStamp( sectors int64 ) string {

  mm:= sectors/SECTORS_PER_MINUTE
  tmp:= sectors%SECTORS_PER_MINUTE
  ss:= tmp/SECTORS_PER_SECOND
  ff:= tmp%SECTORS_PER_SECOND

  return fmt.Sprintf ( "%02d:%02d:%02d", mm, ss, ff )
  
} // end SectorsToStamp


// Accepta text abans de la marca, sols es processa l'últim token.
func StampToSectors( text string ) (int64,error) {

  // Últim token
  fields:= strings.Fields ( text )
  if len(fields) == 0 {
    return -1,fmt.Errorf ( "%w: empty string", ErrMalformedTimestamp )
  }
  stamp:= fields[len(fields)-1]

  // Camps
  parts:= strings.Split ( stamp, ":" )
  if len(parts) != 3 {
    return -1,fmt.Errorf ( "%w: %q", ErrMalformedTimestamp, stamp )
  }
  var vals [3]int64
  for i,p:= range parts {
    tmp,err:= strconv.ParseUint ( p, 10, 32 )
    if err != nil {
      return -1,fmt.Errorf ( "%w: %q", ErrMalformedTimestamp, stamp )
    }
    vals[i]= int64(tmp)
  }
  
  return vals[2] + vals[1]*SECTORS_PER_SECOND + vals[0]*SECTORS_PER_MINUTE,nil
  
} // end StampToSectors
