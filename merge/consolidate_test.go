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

package merge

import (
  "errors"
  "io"
  "os"
  "path/filepath"
  "sort"
  "strings"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "github.com/adriagipas/binmerge/cdread"
  "github.com/adriagipas/binmerge/utils"
)

const TWO_FILES_CUE = `FILE "Game (Track 1).bin" BINARY
  TRACK 01 MODE2/2352
    INDEX 01 00:00:00
FILE "Game (Track 2).bin" BINARY
  TRACK 02 AUDIO
    INDEX 00 00:00:00
    INDEX 01 00:02:00
`

func twoFilesDisc( t *testing.T ) (*cdread.Disc,[]byte) {
  dir:= t.TempDir ()
  a:= randomBytes ( 2352*1000, 3 )
  b:= randomBytes ( 2352*200, 4 )
  require.NoError ( t, os.WriteFile ( filepath.Join ( dir, "Game (Track 1).bin" ), a, 0666 ) )
  require.NoError ( t, os.WriteFile ( filepath.Join ( dir, "Game (Track 2).bin" ), b, 0666 ) )
  cue_path:= filepath.Join ( dir, "Game.cue" )
  require.NoError ( t, os.WriteFile ( cue_path, []byte(TWO_FILES_CUE), 0666 ) )

  disc,err:= cdread.OpenCue ( cue_path, utils.HostFS{} )
  require.NoError ( t, err )
  
  return disc,append(a,b...)
}

func dirNames( t *testing.T, dir string ) []string {
  entries,err:= os.ReadDir ( dir )
  require.NoError ( t, err )
  ret:= []string{}
  for _,e:= range entries {
    ret= append(ret,e.Name ())
  }
  sort.Strings ( ret )
  return ret
}

func TestConsolidate(t *testing.T) {
  disc,data:= twoFilesDisc ( t )
  out:= t.TempDir ()

  res,err:= Consolidate ( disc, out, utils.HostFS{}, nil )
  require.NoError ( t, err )
  assert.Equal ( t, filepath.Join ( out, "Game", "Game.bin" ), res.BinPath )
  assert.Equal ( t, filepath.Join ( out, "Game", "Game.cue" ), res.CuePath )
  assert.Equal ( t, int64(len(data)), res.Bytes )

  bin,err:= os.ReadFile ( res.BinPath )
  require.NoError ( t, err )
  assert.Equal ( t, data, bin )

  cue,err:= os.ReadFile ( res.CuePath )
  require.NoError ( t, err )
  assert.Equal ( t, "FILE \"Game.bin\" BINARY\n"+
    "  TRACK 01 MODE2/2352\n"+
    "    INDEX 01 00:00:00\n"+
    "  TRACK 02 AUDIO\n"+
    "    INDEX 00 00:13:20\n"+
    "    INDEX 01 00:15:25\n", string(cue) )

  // Sense fitxers temporals
  assert.Equal ( t, []string{ "Game.bin", "Game.cue" }, dirNames ( t, res.Dir ) )
}

func TestConsolidateTwice(t *testing.T) {
  disc,data:= twoFilesDisc ( t )
  out:= t.TempDir ()

  res,err:= Consolidate ( disc, out, utils.HostFS{}, nil )
  require.NoError ( t, err )

  _,err= Consolidate ( disc, out, utils.HostFS{}, nil )
  assert.ErrorIs ( t, err, ErrOutputAlreadyExists )

  bin,err:= os.ReadFile ( res.BinPath )
  require.NoError ( t, err )
  assert.Equal ( t, data, bin )
  assert.Equal ( t, []string{ "Game.bin", "Game.cue" }, dirNames ( t, res.Dir ) )
}

func TestConsolidateExistingDir(t *testing.T) {
  disc,_:= twoFilesDisc ( t )
  out:= t.TempDir ()
  require.NoError ( t, os.MkdirAll ( filepath.Join ( out, "Game" ), 0777 ) )

  _,err:= Consolidate ( disc, out, utils.HostFS{}, nil )
  assert.NoError ( t, err )
}

func TestConsolidateFailureLeavesNoBin(t *testing.T) {
  disc,_:= twoFilesDisc ( t )
  out:= t.TempDir ()

  // El segon fitxer desapareix després de llegir el full
  require.NoError ( t, os.Remove ( disc.Files[1].Path ) )
  _,err:= Consolidate ( disc, out, utils.HostFS{}, nil )
  require.Error ( t, err )
  assert.Empty ( t, dirNames ( t, filepath.Join ( out, "Game" ) ) )
}

// HostFS amb fallades controlades.
type faultyFS struct {
  utils.HostFS
  before_write func( file_name string ) // Abans d'escriure
  fail_cue     bool
  fail_remove  bool
}

var errDiskFull = errors.New ( "disk full" )
var errBusy = errors.New ( "device busy" )

func (self faultyFS) WriteFile(
  file_name string,
  r         io.Reader,
  exclusive bool,
) (int64,error) {
  if self.before_write != nil {
    self.before_write ( file_name )
  }
  if self.fail_cue && strings.HasSuffix ( file_name, ".cue" ) {
    return -1,errDiskFull
  }
  return self.HostFS.WriteFile ( file_name, r, exclusive )
}

func (self faultyFS) Remove( file_name string ) error {
  if self.fail_remove { return errBusy }
  return self.HostFS.Remove ( file_name )
}

func TestConsolidateCueFailureRemovesBin(t *testing.T) {
  disc,_:= twoFilesDisc ( t )
  out:= t.TempDir ()

  _,err:= Consolidate ( disc, out, faultyFS{ fail_cue : true }, nil )
  assert.ErrorIs ( t, err, errDiskFull )
  assert.Empty ( t, dirNames ( t, filepath.Join ( out, "Game" ) ) )
}

func TestConsolidateCueFailureReportsRemoveError(t *testing.T) {
  disc,_:= twoFilesDisc ( t )
  out:= t.TempDir ()

  fs:= faultyFS{ fail_cue : true, fail_remove : true }
  _,err:= Consolidate ( disc, out, fs, nil )
  assert.ErrorIs ( t, err, errDiskFull )
  assert.ErrorIs ( t, err, errBusy )
}

func TestConsolidateConcurrentCreator(t *testing.T) {
  disc,_:= twoFilesDisc ( t )
  out:= t.TempDir ()
  bin_path:= filepath.Join ( out, "Game", "Game.bin" )

  // Un altre procés crea el BIN després de la comprovació
  fs:= faultyFS{
    before_write : func( file_name string ) {
      if file_name == bin_path {
        require.NoError ( t, os.WriteFile ( bin_path, []byte("previous"), 0666 ) )
      }
    },
  }
  _,err:= Consolidate ( disc, out, fs, nil )
  assert.ErrorIs ( t, err, ErrOutputAlreadyExists )

  data,err:= os.ReadFile ( bin_path )
  require.NoError ( t, err )
  assert.Equal ( t, "previous", string(data) )
  assert.Equal ( t, []string{ "Game.bin" }, dirNames ( t, filepath.Join ( out, "Game" ) ) )
}
