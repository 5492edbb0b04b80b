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
 *  reader.go - Lector que concatena els fitxers binaris d'un disc.
 */

package merge

import (
  "fmt"
  "io"

  "github.com/adriagipas/binmerge/cdread"
  "github.com/adriagipas/binmerge/utils"
)




/**********/
/* READER */
/**********/

type Opener interface {
  Open(file_name string) (utils.FileReader,error)
}


// Els fitxers s'obrin quan calen, en l'ordre del model, i cadascun es
// tanca abans d'obrir el següent.
type Reader struct {

  disc  *cdread.Disc
  fs    Opener
  next  int // Següent fitxer a obrir
  cur   *cdread.File
  file  utils.FileReader
  nread int64 // Bytes llegits del fitxer actual
  
}


func NewReader( disc *cdread.Disc, fs Opener ) *Reader {
  return &Reader{
    disc : disc,
    fs   : fs,
  }
} // end NewReader


func (self *Reader) openNext() error {

  self.cur= self.disc.Files[self.next]
  self.next++
  f,err:= self.fs.Open ( self.cur.Path )
  if err != nil { return err }
  self.file= f
  self.nread= 0

  return nil
  
} // end openNext


func (self *Reader) closeCurrent() error {

  err:= self.file.Close ()
  self.file= nil
  if err != nil { return err }
  if self.nread != self.cur.Size {
    return fmt.Errorf ( "%w: '%s' (expected %d bytes, read %d)",
      ErrSourceSizeChanged, self.cur.Path, self.cur.Size, self.nread )
  }

  return nil
  
} // end closeCurrent


func (self *Reader) Read( b []byte ) (int,error) {

  if len(b) == 0 { return 0,nil }
  for {

    // Obri el següent fitxer si cal
    if self.file == nil {
      if self.next >= len(self.disc.Files) {
        return 0,io.EOF
      }
      if err:= self.openNext (); err != nil {
        return 0,err
      }
    }

    // Llig
    n,err:= self.file.Read ( b )
    self.nread+= int64(n)
    if err == io.EOF {
      if err:= self.closeCurrent (); err != nil {
        return n,err
      }
      if n > 0 { return n,nil }
      continue
    } else if err != nil {
      return n,err
    }
    if self.nread > self.cur.Size {
      return n,fmt.Errorf ( "%w: '%s' grew beyond %d bytes",
        ErrSourceSizeChanged, self.cur.Path, self.cur.Size )
    }
    if n > 0 { return n,nil }
    
  }
  
} // end Read


func (self *Reader) Close() error {

  if self.file != nil {
    err:= self.file.Close ()
    self.file= nil
    return err
  }

  return nil
  
} // end Close


// Copia tots els bytes dels fitxers del disc, un darrere de l'altre.
func MergeBytes( disc *cdread.Disc, fs Opener, w io.Writer ) (int64,error) {

  r:= NewReader ( disc, fs )
  defer r.Close ()
  
  return io.Copy ( w, r )
  
} // end MergeBytes
