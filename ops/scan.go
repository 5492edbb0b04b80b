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
 *  scan.go - Busca els fulls CUE a processar.
 *
 */

package ops

import (
  "os"
  "path/filepath"
  "strings"
)


/************/
/* FUNCIONS */
/************/

// Fulls CUE del directori, sense entrar en subdirectoris. L'ordre és
// el dels noms.
func FindCueFiles( dir_name string ) ([]string,error) {

  entries,err:= os.ReadDir ( dir_name )
  if err != nil { return nil,err }

  ret:= []string{}
  for _,e:= range entries {
    if !e.IsDir () && strings.EqualFold ( filepath.Ext ( e.Name () ), ".cue" ) {
      ret= append(ret,filepath.Join ( dir_name, e.Name () ))
    }
  }
  
  return ret,nil
  
} // end FindCueFiles


// Cada entrada pot ser un full CUE o un directori. Els fitxers
// repetits sols apareixen una vegada.
func CollectInputs( inputs []string ) ([]string,error) {

  ret:= []string{}
  seen:= make(map[string]bool)
  add:= func( file_name string ) error {
    abs_name,err:= filepath.Abs ( file_name )
    if err != nil { return err }
    if !seen[abs_name] {
      seen[abs_name]= true
      ret= append(ret,abs_name)
    }
    return nil
  }
  
  for _,input:= range inputs {
    info,err:= os.Stat ( input )
    if err != nil { return nil,err }
    if info.IsDir () {
      files,err:= FindCueFiles ( input )
      if err != nil { return nil,err }
      for _,f:= range files {
        if err:= add ( f ); err != nil { return nil,err }
      }
    } else {
      if err:= add ( input ); err != nil { return nil,err }
    }
  }

  return ret,nil
  
} // end CollectInputs
