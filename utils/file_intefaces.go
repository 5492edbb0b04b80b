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
 *  file_interfaces.go - Interfícies per manipular fitxers.
 *
 */

package utils

import "io"

type FileReader interface {
  
  // Llig en el buffer. Torna el nombre de bytes llegits. Quan aplega
  // al final torna 0 i io.EOF.
  Read(buf []byte) (int,error)

  // Tanca el fitxer.
  Close() error
  
}


// Tot el que necessiten les operacions del sistema de fitxers.
type FileSystem interface {

  // Grandària en bytes.
  Size(file_name string) (int64,error)

  // Línies d'un fitxer de text, ja decodificades.
  ReadLines(file_name string) ([]string,error)

  // Obri un fitxer per a llegir-lo.
  Open(file_name string) (FileReader,error)

  // Indica si ja existeix una entrada amb eixe nom.
  Exists(file_name string) (bool,error)

  // Crea el directori i els pares. No falla si ja existeix.
  MkdirAll(dir_name string) error

  Remove(file_name string) error

  // Escriu el contingut del lector. Amb exclusive no reemplaça mai un
  // fitxer existent.
  WriteFile(file_name string, r io.Reader, exclusive bool) (int64,error)
  
}

var _ FileSystem= HostFS{}
