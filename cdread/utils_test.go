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

package cdread

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestSectorsToStamp(t *testing.T) {
  assert.Equal ( t, "00:00:00", SectorsToStamp ( 0 ) )
  assert.Equal ( t, "00:02:00", SectorsToStamp ( 150 ) )
  assert.Equal ( t, "00:13:20", SectorsToStamp ( 1000 ) )
  assert.Equal ( t, "01:00:00", SectorsToStamp ( 4500 ) )
  assert.Equal ( t, "99:59:74", SectorsToStamp ( 449999 ) )
  // Sense límit de dos dígits en els minuts
  assert.Equal ( t, "100:00:00", SectorsToStamp ( 450000 ) )
}

func TestStampToSectors(t *testing.T) {
  cases:= map[string]int64{
    "00:00:00":         0,
    "00:02:00":         150,
    "00:13:20":         1000,
    "01:00:00":         4500,
    "99:59:74":         449999,
    "  00:00:01  ":     1,
    "\"label\" 01:00:00": 4500,
  }
  for stamp,want:= range cases {
    got,err:= StampToSectors ( stamp )
    require.NoError ( t, err, stamp )
    assert.Equal ( t, want, got, stamp )
  }
}

func TestStampToSectorsMalformed(t *testing.T) {
  for _,stamp:= range []string{
    "", "   ", "00:02", "00:00:00:00", "aa:00:00", "00:0b:00",
    "-1:00:00", "00::00",
  } {
    _,err:= StampToSectors ( stamp )
    assert.ErrorIs ( t, err, ErrMalformedTimestamp, stamp )
  }
}

func TestStampRoundTrip(t *testing.T) {
  for n:= int64(0); n < 20000; n++ {
    got,err:= StampToSectors ( SectorsToStamp ( n ) )
    require.NoError ( t, err )
    require.Equal ( t, n, got )
  }
  for _,n:= range []int64{ 333000, 449999, 450000, 1 << 30 } {
    got,err:= StampToSectors ( SectorsToStamp ( n ) )
    require.NoError ( t, err )
    assert.Equal ( t, n, got )
  }
  for _,s:= range []string{ "00:00:00", "12:34:56", "74:59:74", "99:00:01" } {
    n,err:= StampToSectors ( s )
    require.NoError ( t, err )
    assert.Equal ( t, s, SectorsToStamp ( n ) )
  }
}
