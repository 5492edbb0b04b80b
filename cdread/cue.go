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
 *  cue.go - Lector de fulls CUE (FILE/TRACK/INDEX).
 */

package cdread

import (
  "errors"
  "fmt"
  "io/fs"
  "path"
  "path/filepath"
  "strconv"
  "strings"
  "unicode"
  "unicode/utf8"
)




/*********/
/* UTILS */
/*********/

// Separa una línia en comandament, part central i últim token. La
// part central conserva els espais interns (noms de fitxer).
func SplitCueLine( line string ) (keyword,middle,last string,err error) {

  line= strings.TrimSpace ( line )
  if len(strings.Fields ( line )) < 3 {
    err= fmt.Errorf ( "%w: %q", ErrMalformedCueLine, line )
    return
  }

  // Primer i últim espai
  i:= strings.IndexFunc ( line, unicode.IsSpace )
  j:= strings.LastIndexFunc ( line, unicode.IsSpace )
  _,size:= utf8.DecodeRuneInString ( line[j:] )

  keyword= line[:i]
  middle= strings.TrimSpace ( line[i:j] )
  last= line[j+size:]
  
  return
  
} // end SplitCueLine


// Lleva les cometes i es queda sols amb el nom del fitxer. Els
// separadors de Windows també es tenen en compte.
func cueFileName( str string ) string {

  if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
    str= str[1:len(str)-1]
  }
  str= strings.ReplaceAll ( str, "\\", "/" )
  
  return path.Base ( str )
  
} // end cueFileName




/**************/
/* CUE PARSER */
/**************/

// Estat del recorregut. file i track són els cursors actuals, nil si
// encara no s'han definit.
type _CueParser struct {

  dir_name string
  fs       SizeReader
  disc     *Disc
  file     *File
  track    *Track
  
}


func (self *_CueParser) readFile( middle string ) error {

  file_name:= filepath.Join ( self.dir_name, cueFileName ( middle ) )
  size,err:= self.fs.Size ( file_name )
  if err != nil {
    if errors.Is ( err, fs.ErrNotExist ) {
      return fmt.Errorf ( "%w: %s", ErrSourceFileNotFound, file_name )
    }
    return err
  }

  // Nou fitxer actual
  self.file= &File{
    Path : file_name,
    Size : size,
  }
  self.track= nil
  self.disc.Files= append(self.disc.Files,self.file)
  
  return nil
  
} // end readFile


func (self *_CueParser) readTrack( middle,last string ) error {

  // Sense fitxer s'ignora
  if self.file == nil { return nil }

  num,err:= strconv.Atoi ( middle )
  if err != nil || num < 1 {
    return fmt.Errorf ( "%w: wrong track number %q",
      ErrMalformedCueLine, middle )
  }
  tt,err:= ParseTrackType ( last )
  if err != nil { return err }

  // El primer track fixa la grandària de bloc de tot el disc
  if self.disc.NumTracks == 0 {
    self.disc.BlockSize= tt.SectorSize ()
  }
  self.track= &Track{
    Number : num,
    Type   : tt,
  }
  self.file.Tracks= append(self.file.Tracks,self.track)
  self.disc.NumTracks++
  
  return nil
  
} // end readTrack


func (self *_CueParser) readIndex( middle,last string ) error {

  // Sense track s'ignora
  if self.track == nil { return nil }

  id,err:= strconv.Atoi ( middle )
  if err != nil || id < 0 {
    return fmt.Errorf ( "%w: wrong index identifier %q",
      ErrMalformedCueLine, middle )
  }
  ind,err:= NewIndex ( id, last )
  if err != nil { return err }
  self.track.Indexes= append(self.track.Indexes,ind)
  
  return nil
  
} // end readIndex


func (self *_CueParser) readLine( line string ) error {

  // Les línies buides s'ignoren. Qualsevol altra línia amb menys de
  // tres camps és un error.
  if len(strings.TrimSpace ( line )) == 0 { return nil }
  
  cmd,middle,last,err:= SplitCueLine ( line )
  if err != nil { return err }
  switch cmd {
  case "FILE":
    return self.readFile ( middle )
  case "TRACK":
    return self.readTrack ( middle, last )
  case "INDEX":
    return self.readIndex ( middle, last )
  default: // REM, PREGAP, FLAGS...
    return nil
  }
  
} // end readLine


// Construeix el model d'un full CUE en una sola passada. Els fitxers
// es resolen respecte a dir_name.
func ParseCue(

  lines     []string,
  dir_name  string,
  base_name string,
  fs        SizeReader,
  
) (*Disc,error) {

  p:= _CueParser{
    dir_name : dir_name,
    fs       : fs,
    disc     : &Disc{ BaseName : base_name },
  }
  for n,line:= range lines {
    if err:= p.readLine ( line ); err != nil {
      return nil,fmt.Errorf ( "line %d: %w", n+1, err )
    }
  }
  
  return p.disc,nil
  
} // end ParseCue
