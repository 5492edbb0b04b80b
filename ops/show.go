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
 * show.go - Implementa l'operació SHOW. Mostra per pantala la
 *           informació dels fulls CUE.
 */

package ops

import (
  "fmt"
  "io"
  "os"
  "path/filepath"

  "github.com/adriagipas/binmerge/cdread"
  "github.com/adriagipas/binmerge/merge"
  "github.com/adriagipas/binmerge/utils"
)


/**********************/
/* FUNCIONS PÚBLIQUES */
/**********************/

func PrintDiscInfo( file io.Writer, disc *cdread.Disc, prefix string ) {

  fmt.Fprintf ( file, "%sNAME:       %s\n", prefix, disc.BaseName )
  fmt.Fprintf ( file, "%sFILES:      %d\n", prefix, len(disc.Files) )
  fmt.Fprintf ( file, "%sTRACKS:     %d\n", prefix, disc.NumTracks )
  fmt.Fprintf ( file, "%sINDEXES:    %d\n", prefix, disc.NumIndexes () )
  fmt.Fprintf ( file, "%sBLOCK SIZE: %d\n", prefix, disc.BlockSize )
  fmt.Fprintf ( file, "%sDATA SIZE:  %s\n", prefix,
    utils.NumBytesToStr ( uint64(disc.DataSize ()) ) )
  
  for _,f:= range disc.Files {
    fmt.Fprintln ( file, prefix )
    fmt.Fprintf ( file, "%sFILE %s (%s)\n", prefix,
      filepath.Base ( f.Path ), utils.NumBytesToStr ( uint64(f.Size) ) )
    for _,t:= range f.Tracks {
      fmt.Fprintf ( file, "%s  TRACK %02d %s\n", prefix, t.Number, t.Type )
      for _,ind:= range t.Indexes {
        fmt.Fprintf ( file, "%s    INDEX %02d %s (sector %d)\n", prefix,
          ind.Id, cdread.SectorsToStamp ( ind.Offset ), ind.Offset )
      }
    }
  }
  
} // end PrintDiscInfo


func Show ( args *utils.Args ) error {

  sargs:= args.Show
  fs:= utils.HostFS{}
  print_name:= len(sargs.Inputs)>1
  for _,file_name:= range sargs.Inputs {
    fmt.Println("")
    if print_name {
      fmt.Printf("  \"%s\"\n",file_name)
      fmt.Println("")
    }
    disc,err:= cdread.OpenCue ( file_name, fs )
    if err != nil {
      return fmt.Errorf ( "%s: %w", file_name, err )
    }
    PrintDiscInfo ( os.Stdout, disc, "    " )
    if sargs.Sheet {
      fmt.Println("")
      fmt.Print ( merge.RenderSheet ( disc, disc.BaseName, nil ) )
    }
    fmt.Println("")
  }
  
  return nil
  
} // end Show
