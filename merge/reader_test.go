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
  "bytes"
  "math/rand"
  "os"
  "path/filepath"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "github.com/adriagipas/binmerge/cdread"
  "github.com/adriagipas/binmerge/utils"
)

func randomBytes( n int, seed int64 ) []byte {
  ret:= make([]byte,n)
  rand.New ( rand.NewSource ( seed ) ).Read ( ret )
  return ret
}

func writeBin( t *testing.T, dir, name string, data []byte ) *cdread.File {
  file_name:= filepath.Join ( dir, name )
  require.NoError ( t, os.WriteFile ( file_name, data, 0666 ) )
  return &cdread.File{
    Path   : file_name,
    Size   : int64(len(data)),
    Tracks : []*cdread.Track{ track ( 1, cdread.TRACK_TYPE_AUDIO ) },
  }
}

func TestMergeBytes(t *testing.T) {
  dir:= t.TempDir ()
  a:= randomBytes ( 3000, 1 )
  b:= randomBytes ( 70000, 2 )
  c:= []byte{}
  disc:= newDisc (
    writeBin ( t, dir, "a.bin", a ),
    writeBin ( t, dir, "c.bin", c ),
    writeBin ( t, dir, "b.bin", b ),
  )

  var out bytes.Buffer
  n,err:= MergeBytes ( disc, utils.HostFS{}, &out )
  require.NoError ( t, err )
  assert.Equal ( t, int64(len(a)+len(b)), n )
  assert.True ( t, bytes.Equal ( append(append([]byte{},a...),b...), out.Bytes () ) )
}

func TestReaderSmallReads(t *testing.T) {
  dir:= t.TempDir ()
  disc:= newDisc (
    writeBin ( t, dir, "a.bin", []byte("abc") ),
    writeBin ( t, dir, "b.bin", []byte("defg") ),
  )
  r:= NewReader ( disc, utils.HostFS{} )
  defer r.Close ()

  var out []byte
  buf:= make([]byte,2)
  for {
    n,err:= r.Read ( buf )
    out= append(out,buf[:n]...)
    if err != nil {
      break
    }
  }
  assert.Equal ( t, "abcdefg", string(out) )
}

func TestReaderSizeChanged(t *testing.T) {
  dir:= t.TempDir ()

  // Més curt del que diu el model
  f:= writeBin ( t, dir, "a.bin", []byte("abc") )
  f.Size= 10
  _,err:= MergeBytes ( newDisc ( f ), utils.HostFS{}, &bytes.Buffer{} )
  assert.ErrorIs ( t, err, ErrSourceSizeChanged )

  // Més llarg
  f= writeBin ( t, dir, "b.bin", []byte("abcdef") )
  f.Size= 2
  _,err= MergeBytes ( newDisc ( f ), utils.HostFS{}, &bytes.Buffer{} )
  assert.ErrorIs ( t, err, ErrSourceSizeChanged )
}

func TestReaderMissingFile(t *testing.T) {
  disc:= newDisc ( &cdread.File{
    Path : filepath.Join ( t.TempDir (), "none.bin" ),
    Size : 1,
  })
  _,err:= MergeBytes ( disc, utils.HostFS{}, &bytes.Buffer{} )
  assert.ErrorIs ( t, err, os.ErrNotExist )
}
