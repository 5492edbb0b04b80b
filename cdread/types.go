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
 *  types.go - Tipus de tracks i model en memòria d'un full CUE.
 */

package cdread

import (
  "fmt"
  "strings"
)




/**************/
/* TRACK TYPE */
/**************/

type TrackType struct {
  name        string
  sector_size int // Bytes per sector
}

func (self TrackType) Name() string { return self.name }

func (self TrackType) SectorSize() int { return self.sector_size }

func (self TrackType) String() string { return self.name }


// L'ordre importa: ParseTrackType es queda amb la primera coincidència.
var _track_types= [...]TrackType{
  {"AUDIO",2352},
  {"CDG",2448},
  {"MODE1/2048",2048},
  {"MODE1/2352",2352},
  {"MODE2/2336",2336},
  {"MODE2/2352",2352},
  {"CDI/2336",2336},
  {"CDI/2352",2352},
}

var (
  TRACK_TYPE_AUDIO      = _track_types[0]
  TRACK_TYPE_CDG        = _track_types[1]
  TRACK_TYPE_MODE1_2048 = _track_types[2]
  TRACK_TYPE_MODE1_2352 = _track_types[3]
  TRACK_TYPE_MODE2_2336 = _track_types[4]
  TRACK_TYPE_MODE2_2352 = _track_types[5]
  TRACK_TYPE_CDI_2336   = _track_types[6]
  TRACK_TYPE_CDI_2352   = _track_types[7]
)


// Torna una còpia del catàleg de tipus coneguts.
func TrackTypes() []TrackType {
  ret:= make([]TrackType,len(_track_types))
  copy ( ret, _track_types[:] )
  return ret
} // end TrackTypes


// Busca el primer tipus del catàleg contingut en l'etiqueta.
func ParseTrackType( label string ) (TrackType,error) {

  for _,tt:= range _track_types {
    if strings.Contains ( label, tt.name ) {
      return tt,nil
    }
  }
  
  return TrackType{},fmt.Errorf ( "%w: %q", ErrInvalidTrackType, label )
  
} // end ParseTrackType




/*********/
/* MODEL */
/*********/

type Index struct {
  Id     int
  Stamp  string // Text original
  Offset int64  // Sectors des del principi del fitxer
}

type Track struct {
  Number  int
  Type    TrackType
  Indexes []Index
}

type File struct {
  Path   string
  Tracks []*Track
  Size   int64 // Bytes
}

type Disc struct {
  BaseName  string
  Files     []*File
  NumTracks int
  BlockSize int // Grandària de sector del primer track del full
}


func NewIndex( id int, stamp string ) (Index,error) {

  offset,err:= StampToSectors ( stamp )
  if err != nil { return Index{},err }
  
  return Index{
    Id     : id,
    Stamp  : stamp,
    Offset : offset,
  },nil
  
} // end NewIndex


// Grandària de sector del primer track del fitxer, 0 si no en té.
func (self *File) BlockSize() int {
  if len(self.Tracks) == 0 { return 0 }
  return self.Tracks[0].Type.SectorSize ()
} // end BlockSize


func (self *Disc) NumIndexes() int {

  ret:= 0
  for _,f:= range self.Files {
    for _,t:= range f.Tracks {
      ret+= len(t.Indexes)
    }
  }

  return ret
  
} // end NumIndexes


// Suma de les grandàries de tots els fitxers binaris.
func (self *Disc) DataSize() int64 {

  var ret int64= 0
  for _,f:= range self.Files {
    ret+= f.Size
  }

  return ret
  
} // end DataSize
