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
 *  open.go - Obri un full CUE des del sistema de fitxers.
 */

package cdread

import (
  "path/filepath"
  "strings"
)




/****************/
/* PART PÚBLICA */
/****************/

type SizeReader interface {

  // Torna la grandària en bytes del fitxer.
  Size(file_name string) (int64,error)
  
}

type CueReader interface {

  SizeReader
  
  // Torna totes les línies d'un fitxer de text.
  ReadLines(file_name string) ([]string,error)
  
}


// Llig el full CUE i crea el model. El nom base és el nom del fitxer
// sense extensió.
func OpenCue( file_name string, fs CueReader ) (*Disc,error) {

  abs_name,err:= filepath.Abs ( file_name )
  if err != nil { return nil,err }
  lines,err:= fs.ReadLines ( abs_name )
  if err != nil { return nil,err }

  base:= filepath.Base ( abs_name )
  base= strings.TrimSuffix ( base, filepath.Ext ( base ) )
  
  return ParseCue ( lines, filepath.Dir ( abs_name ), base, fs )
  
} // end OpenCue
