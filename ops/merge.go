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
 *  merge.go - Implementa l'operació MERGE. Fusiona els BIN de cada
 *             full CUE en un sol BIN amb el seu CUE.
 *
 */

package ops

import (
  "errors"
  "fmt"
  "os"
  "path/filepath"

  "golang.org/x/sync/errgroup"

  "github.com/adriagipas/binmerge/cdread"
  "github.com/adriagipas/binmerge/merge"
  "github.com/adriagipas/binmerge/utils"
)


var ErrSomeFailed = errors.New ( "some CUE sheets could not be merged" )


/************/
/* OPERACIÓ */
/************/

func mergeSheet(

  cue_path string,
  out_dir  string,
  fs       utils.FileSystem,
  opts     *merge.Options,
  
) SheetResult {

  ret:= SheetResult{ CuePath : cue_path }
  disc,err:= cdread.OpenCue ( cue_path, fs )
  if err != nil {
    ret.Err= err
    return ret
  }
  ret.Result,ret.Err= merge.Consolidate ( disc, out_dir, fs, opts )

  return ret
  
} // end mergeSheet


// Cada full és independent. Un error en un full no para la resta.
func MergeSheets(

  cue_paths []string,
  out_dir   string,
  jobs      int,
  fs        utils.FileSystem,
  opts      *merge.Options,
  
) *Report {

  ret:= Report{
    Results : make([]SheetResult,len(cue_paths)),
  }
  var g errgroup.Group
  if jobs < 1 { jobs= 1 }
  g.SetLimit ( jobs )
  for i,p:= range cue_paths {
    i,p:= i,p
    g.Go ( func() error {
      ret.Results[i]= mergeSheet ( p, out_dir, fs, opts )
      return nil
    })
  }
  g.Wait ()
  
  return &ret
  
} // end MergeSheets


func Merge ( args *utils.Args ) error {

  margs:= args.Merge
  
  // Fulls
  cue_paths,err:= CollectInputs ( margs.Inputs )
  if err != nil { return err }
  if len(cue_paths) == 0 {
    return fmt.Errorf ( "no CUE files found in %v", margs.Inputs )
  }

  // Directori d'eixida
  out_dir,err:= filepath.Abs ( margs.Output )
  if err != nil { return err }

  // Executa
  opts:= merge.Options{
    PerFileBlockSize : margs.PerFileBlockSize,
  }
  rep:= MergeSheets ( cue_paths, out_dir, margs.Jobs, utils.HostFS{}, &opts )
  rep.Print ( os.Stdout, args.Quiet )
  if len(rep.Failed ()) > 0 {
    return ErrSomeFailed
  }
  
  return nil
  
} // end Merge
