// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package convert

import (
	"io"
	"os"
)

// FileError wraps the OS error from reading a text file
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return "readTextFile: " + e.Err.Error()
}

func (e *FileError) Unwrap() error { return e.Err }

// ReadTextFile returns the full contents of the file at path
func ReadTextFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	return string(data), nil
}
