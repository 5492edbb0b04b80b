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
 *  version.go - Versió del programa.
 *
 */

package utils;

import "fmt"

const VERSION = "1.0.0"

func VersionString() string {
  return fmt.Sprintf (
    "binmerge %s\n"+
      "Copyright (C) 2025 Adrià Giménez Pastor\n"+
      "License GPLv3+: GNU GPL version 3 or later "+
      "<https://gnu.org/licenses/gpl.html>.\n"+
      "This is free software: you are free to change and redistribute it.\n"+
      "There is NO WARRANTY, to the extent permitted by law.",
    VERSION )
} // end VersionString

