// seehuhn.de/go/schottky - limit sets of Schottky groups
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Licensify checks that all Go source files start with the license header.
//
// Usage:
//
//	licensify [-fix] [dir]
//
// Files without the header are listed.  With -fix, the header is inserted
// into files which start with a package clause; other files are reported
// for manual inspection.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/schottky - limit sets of Schottky groups
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

`

func main() {
	fix := flag.Bool("fix", false, "insert missing headers")
	flag.Parse()

	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	res, err := scan(root, *fix)
	if err != nil {
		log.Fatal(err)
	}
	for _, path := range res.updated {
		fmt.Println("updating " + path)
	}
	for _, path := range res.missing {
		fmt.Println("missing header " + path)
	}
	for _, path := range res.attention {
		fmt.Println("ATTENTION " + path)
	}
	if len(res.missing)+len(res.attention) > 0 {
		os.Exit(1)
	}
}

type result struct {
	updated   []string
	missing   []string
	attention []string
}

// scan walks the tree below root.  Directories starting with "_" or "."
// are skipped, as the go tool does.
func scan(root string, fix bool) (*result, error) {
	res := &result{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if bytes.HasPrefix(body, []byte(header)) {
			return nil
		}
		if !bytes.HasPrefix(body, []byte("package ")) {
			res.attention = append(res.attention, path)
			return nil
		}
		if !fix {
			res.missing = append(res.missing, path)
			return nil
		}

		err = os.WriteFile(path, append([]byte(header), body...), 0o644)
		if err != nil {
			return err
		}
		res.updated = append(res.updated, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
