// Copyright (C) 2014 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

// Walk expands the given paths into the list of files to hash. Directories
// are replaced by the regular files below them in lexical order; anything
// else, including paths that do not exist, is passed through unchanged so
// that the error surfaces when the file is hashed.
func Walk(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil || !fi.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if d.Type().IsRegular() {
				files = append(files, p)
			} else if !d.IsDir() {
				l.Debugln("skipping non-regular file", p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
