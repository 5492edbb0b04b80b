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
 *  host_fs.go - Accés al sistema de fitxers local. Lectura dels
 *               fulls CUE i escriptura atòmica dels resultats.
 */

package utils

import (
  "bufio"
  "errors"
  "fmt"
  "io"
  "os"
  "path/filepath"
  "strings"
  "unicode/utf8"
  
  "golang.org/x/text/encoding"
  "golang.org/x/text/encoding/charmap"
  "golang.org/x/text/encoding/unicode"
)




/*********/
/* UTILS */
/*********/

// Els fulls CUE poden estar en UTF-8 (amb o sense BOM) o, si venen de
// programes de Windows, en Windows-1252.
func DecodeText( data []byte ) (string,error) {

  var dec *encoding.Decoder
  if utf8.Valid ( data ) {
    dec= unicode.UTF8BOM.NewDecoder ()
  } else {
    dec= charmap.Windows1252.NewDecoder ()
  }
  ret,err:= dec.Bytes ( data )
  if err != nil { return "",err }
  
  return string(ret),nil
  
} // end DecodeText


func SplitLines( text string ) ([]string,error) {

  ret:= []string{}
  s:= bufio.NewScanner ( strings.NewReader ( text ) )
  s.Buffer ( make([]byte,0,4096), len(text)+1 ) // Sense límit de línia
  for s.Scan () {
    ret= append(ret,s.Text ())
  }
  if err:= s.Err (); err != nil { return nil,err }

  return ret,nil
  
} // end SplitLines




/***********/
/* HOST FS */
/***********/

// Es pot substituir en les proves.
var link= os.Link


// Fica tmp_name en file_name sense reemplaçar mai un fitxer
// existent. Si el sistema de fitxers no té enllaços durs (FAT, exFAT,
// alguns SMB) primer es reserva el nom amb O_EXCL i després es
// reanomena damunt.
func commitExclusive( tmp_name, file_name string ) error {

  err:= link ( tmp_name, file_name )
  if err == nil || errors.Is ( err, os.ErrExist ) {
    return err
  }

  // Sense enllaços
  f,err:= os.OpenFile ( file_name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0666 )
  if err != nil { return err }
  if err:= f.Close (); err != nil {
    return errors.Join ( err, os.Remove ( file_name ) )
  }
  if err:= os.Rename ( tmp_name, file_name ); err != nil {
    return errors.Join ( err, os.Remove ( file_name ) )
  }
  
  return nil
  
} // end commitExclusive


type HostFS struct{}


func (self HostFS) Size( file_name string ) (int64,error) {

  info,err:= os.Stat ( file_name )
  if err != nil { return -1,err }
  if info.IsDir () {
    return -1,fmt.Errorf ( "'%s' is a directory", file_name )
  }
  
  return info.Size (),nil
  
} // end Size


func (self HostFS) ReadLines( file_name string ) ([]string,error) {

  data,err:= os.ReadFile ( file_name )
  if err != nil { return nil,err }
  text,err:= DecodeText ( data )
  if err != nil {
    return nil,fmt.Errorf ( "unable to decode '%s': %s", file_name, err )
  }
  
  return SplitLines ( text )
  
} // end ReadLines


func (self HostFS) Open( file_name string ) (FileReader,error) {
  return os.Open ( file_name )
} // end Open


func (self HostFS) Exists( file_name string ) (bool,error) {

  _,err:= os.Lstat ( file_name )
  if err == nil {
    return true,nil
  } else if errors.Is ( err, os.ErrNotExist ) {
    return false,nil
  } else {
    return false,err
  }
  
} // end Exists


func (self HostFS) MkdirAll( dir_name string ) error {
  return os.MkdirAll ( dir_name, 0777 )
} // end MkdirAll


func (self HostFS) Remove( file_name string ) error {
  return os.Remove ( file_name )
} // end Remove


// Escriu primer en un fitxer temporal del mateix directori i després
// el fica al seu lloc. Si exclusive és cert no es reemplaça un fitxer
// existent i es torna un error os.ErrExist.
func (self HostFS) WriteFile(
  
  file_name string,
  r         io.Reader,
  exclusive bool,
  
) (int64,error) {

  // Fitxer temporal
  dir,base:= filepath.Split ( file_name )
  if dir == "" { dir= "." }
  tmp,err:= os.CreateTemp ( dir, "."+base+".*.tmp" )
  if err != nil { return -1,err }
  tmp_name:= tmp.Name ()
  defer os.Remove ( tmp_name )

  // Còpia
  n,err:= io.Copy ( tmp, r )
  if err != nil {
    tmp.Close ()
    return -1,err
  }
  if err:= tmp.Sync (); err != nil {
    tmp.Close ()
    return -1,err
  }
  if err:= tmp.Close (); err != nil { return -1,err }

  // Fica al seu lloc
  if exclusive {
    err= commitExclusive ( tmp_name, file_name )
  } else {
    err= os.Rename ( tmp_name, file_name )
  }
  if err != nil { return -1,err }
  
  return n,nil
  
} // end WriteFile
