// seehuhn.de/go/pdfrender - a library for rendering PDF files
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

package pdf

import (
	"errors"
	"strings"
)

// MalformedFileError indicates that a PDF document violates the structural
// expectations of the reader.  Errors of this type are recoverable: the
// caller can skip the offending object and continue with the rest of the
// document.
type MalformedFileError struct {
	Err error

	// Loc gives the location of the error inside the document,
	// from the outside in.
	Loc []string
}

func (err *MalformedFileError) Error() string {
	msg := "malformed PDF"
	if len(err.Loc) > 0 {
		msg += " (" + strings.Join(err.Loc, ", ") + ")"
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// Wrap returns a new MalformedFileError which wraps err and has loc
// prepended to the location list.
func Wrap(err error, loc string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*MalformedFileError); ok {
		e2 := *e
		e2.Loc = append([]string{loc}, e.Loc...)
		return &e2
	}
	return &MalformedFileError{Err: err, Loc: []string{loc}}
}

// IsMalformed reports whether err indicates a malformed PDF document.
func IsMalformed(err error) bool {
	var e *MalformedFileError
	return errors.As(err, &e)
}

// UnsupportedError indicates that a PDF document uses a feature which is
// recognized but not implemented by this library.  Errors of this type are
// recoverable; the library never terminates the process on account of
// unusual input.
type UnsupportedError struct {
	Feature string
}

func (err *UnsupportedError) Error() string {
	return "unsupported feature: " + err.Feature
}

// IsUnsupported reports whether err indicates an unsupported PDF feature.
func IsUnsupported(err error) bool {
	var e *UnsupportedError
	return errors.As(err, &e)
}
