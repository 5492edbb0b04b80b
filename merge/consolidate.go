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
 *  consolidate.go - Escriu el BIN i el CUE fusionats d'un disc.
 */

package merge

import (
  "errors"
  "fmt"
  "io"
  "os"
  "path/filepath"
  "strings"

  "github.com/adriagipas/binmerge/cdread"
)




/*****************/
/* FILESYSTEM IO */
/*****************/

type FileSystem interface {

  Opener

  Exists(file_name string) (bool,error)

  MkdirAll(dir_name string) error

  Remove(file_name string) error

  // Amb exclusive no es reemplaça mai un fitxer existent.
  WriteFile(file_name string, r io.Reader, exclusive bool) (int64,error)
  
}

type Result struct {
  Dir     string
  BinPath string
  CuePath string
  Bytes   int64 // Grandària del BIN
}




/***************/
/* CONSOLIDATE */
/***************/

// Crea out_dir/<nom>/<nom>.bin i out_dir/<nom>/<nom>.cue. Mai
// sobreescriu un BIN existent, i si alguna cosa falla no es deixa cap
// BIN a mitjes.
func Consolidate(

  disc    *cdread.Disc,
  out_dir string,
  fs      FileSystem,
  opts    *Options,
  
) (*Result,error) {

  dir:= filepath.Join ( out_dir, disc.BaseName )
  ret:= Result{
    Dir     : dir,
    BinPath : filepath.Join ( dir, disc.BaseName+".bin" ),
    CuePath : filepath.Join ( dir, disc.BaseName+".cue" ),
  }

  // Comprova que no existeix
  if ok,err:= fs.Exists ( ret.BinPath ); err != nil {
    return nil,err
  } else if ok {
    return nil,fmt.Errorf ( "%w: %s", ErrOutputAlreadyExists, ret.BinPath )
  }

  // Directori
  if err:= fs.MkdirAll ( dir ); err != nil {
    return nil,err
  }

  // BIN
  r:= NewReader ( disc, fs )
  n,err:= fs.WriteFile ( ret.BinPath, r, true )
  if cerr:= r.Close (); cerr != nil && err == nil {
    // El BIN ja està al seu lloc
    err= errors.Join ( cerr, fs.Remove ( ret.BinPath ) )
  } else {
    err= errors.Join ( err, cerr )
  }
  if err != nil {
    if errors.Is ( err, os.ErrExist ) {
      return nil,fmt.Errorf ( "%w: %s", ErrOutputAlreadyExists, ret.BinPath )
    }
    return nil,fmt.Errorf ( "unable to write '%s': %w", ret.BinPath, err )
  }
  ret.Bytes= n

  // CUE
  sheet:= RenderSheet ( disc, disc.BaseName, opts )
  if _,err:= fs.WriteFile ( ret.CuePath,
    strings.NewReader ( sheet ), false ); err != nil {
    if rerr:= fs.Remove ( ret.BinPath ); rerr != nil {
      err= errors.Join ( err,
        fmt.Errorf ( "unable to remove '%s': %w", ret.BinPath, rerr ) )
    }
    return nil,fmt.Errorf ( "unable to write '%s': %w", ret.CuePath, err )
  }
  
  return &ret,nil
  
} // end Consolidate
