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
 *  args.go - Processament de la línia de comandaments.
 *
 */

package utils;

import (
  "errors"
  "fmt"
  "os"

  "github.com/alexflint/go-arg"
)


/*********/
/* TIPUS */
/*********/

type MergeArgs struct {
  Inputs           []string `arg:"positional,required" help:"CUE files, or directories whose CUE files are merged"`
  Output           string   `arg:"-o,--output,required" help:"output directory, each disc goes to its own subdirectory"`
  Jobs             int      `arg:"-j,--jobs" default:"1" help:"number of discs merged at the same time"`
  PerFileBlockSize bool     `arg:"--per-file-block-size" help:"use the sector size of each file's first track instead of the disc's first track"`
}

type ShowArgs struct {
  Inputs []string `arg:"positional,required" help:"CUE files"`
  Sheet  bool     `arg:"-s,--sheet" help:"also print the merged CUE sheet"`
}

type Args struct {

  // Operacions
  Merge *MergeArgs `arg:"subcommand:merge" help:"merge every multi-file CUE/BIN into a single BIN and CUE"`
  Show  *ShowArgs  `arg:"subcommand:show" help:"show the tracks and indexes of CUE sheets"`

  Quiet bool `arg:"-q,--quiet" help:"only report errors"`

  // Operador seleccionat
  Op int `arg:"-"`
  
}


/*************/
/* CONSTANTS */
/*************/

const OP_NONE  = 0
const OP_MERGE = 1
const OP_SHOW  = 2


/**********************/
/* FUNCIONS PÚBLIQUES */
/**********************/

func (Args) Version() string {
  return VersionString ()
} // end Version


func (Args) Description() string {
  return "binmerge joins the BIN files of a CUE sheet into a single BIN\n"+
    "and rewrites the CUE sheet to match it."
} // end Description


func newParser( args *Args ) (*arg.Parser,error) {
  return arg.NewParser ( arg.Config{ Program : "binmerge" }, args )
} // end newParser


// Processa els arguments proporcionats (sense el nom del programa).
func ParseArgs( argv []string ) (*Args,error) {

  args:= Args{}
  p,err:= newParser ( &args )
  if err != nil { return nil,err }
  if err:= p.Parse ( argv ); err != nil {
    return nil,err
  }
  if err:= args.selectOp ( p ); err != nil {
    return nil,err
  }
  
  return &args,nil
  
} // end ParseArgs


func (self *Args) selectOp( p *arg.Parser ) error {

  switch p.Subcommand ().(type) {
  case *MergeArgs:
    self.Op= OP_MERGE
    if self.Merge.Jobs < 1 {
      return fmt.Errorf ( "wrong number of jobs: %d", self.Merge.Jobs )
    }
  case *ShowArgs:
    self.Op= OP_SHOW
  default:
    self.Op= OP_NONE
  }

  return nil
  
} // end selectOp


// Processa os.Args. L'ajuda i la versió s'imprimeixen i el programa
// acaba ací.
func NewArgs() (*Args,error) {

  args:= Args{}
  p,err:= newParser ( &args )
  if err != nil { return nil,err }
  err= p.Parse ( os.Args[1:] )
  if errors.Is ( err, arg.ErrHelp ) {
    p.WriteHelp ( os.Stdout )
    os.Exit ( 0 )
  } else if errors.Is ( err, arg.ErrVersion ) {
    fmt.Println ( args.Version () )
    os.Exit ( 0 )
  } else if err != nil {
    p.WriteUsage ( os.Stderr )
    return nil,err
  }
  if err:= args.selectOp ( p ); err != nil {
    return nil,err
  }
  
  // Sense operació mostra l'ajuda
  if args.Op == OP_NONE {
    p.WriteHelp ( os.Stdout )
  }
  
  return &args,nil
  
} // end NewArgs
