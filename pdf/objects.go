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

// Package pdf gives read-only access to the object graph of a PDF document.
//
// This package does not parse PDF files.  It defines the native object
// types, the [Getter] interface through which a document supplies objects,
// and helper functions which resolve indirect references and convert
// objects to specific types.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Object represents an object in a PDF document.  There are nine native
// types of PDF objects, which implement this interface: Array, Bool, Dict,
// Integer, Name, Real, Reference, Stream, and String.
type Object interface {
	// format writes a textual representation of the object to w.
	// This is used for error messages and debugging.
	format(w io.Writer)
}

// Bool represents a boolean value in a PDF file.
type Bool bool

func (x Bool) format(w io.Writer) {
	if x {
		io.WriteString(w, "true")
	} else {
		io.WriteString(w, "false")
	}
}

// Integer represents an integer constant in a PDF file.
type Integer int64

func (x Integer) format(w io.Writer) {
	io.WriteString(w, strconv.FormatInt(int64(x), 10))
}

// Real represents a real number in a PDF file.
type Real float64

func (x Real) format(w io.Writer) {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + "."
	}
	io.WriteString(w, s)
}

// A Number is either an Integer or a Real.
type Number float64

func (x Number) format(w io.Writer) {
	if i := Integer(x); Number(i) == x {
		i.format(w)
	} else {
		Real(x).format(w)
	}
}

// String represents a raw string in a PDF file.  The character set encoding,
// if any, is determined by the context.
type String []byte

func (x String) format(w io.Writer) {
	buf := &bytes.Buffer{}
	buf.WriteByte('(')
	for _, c := range x {
		switch {
		case c == '(' || c == ')' || c == '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case c < 32 || c >= 127:
			fmt.Fprintf(buf, "\\%03o", c)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte(')')
	w.Write(buf.Bytes())
}

// Name represents a name object in a PDF file.  Names are case-sensitive
// tokens and are compared exactly as written in the file.
type Name string

func (x Name) format(w io.Writer) {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for _, c := range []byte(x) {
		if isDelimiter(c) || c <= 32 || c >= 127 || c == '#' {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	w.Write(buf.Bytes())
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// Array represents an array of objects in a PDF file.
type Array []Object

func (x Array) String() string {
	return "<Array, " + strconv.Itoa(len(x)) + " elements>"
}

func (x Array) format(w io.Writer) {
	io.WriteString(w, "[")
	for i, val := range x {
		if i > 0 {
			io.WriteString(w, " ")
		}
		if val == nil {
			io.WriteString(w, "null")
		} else {
			val.format(w)
		}
	}
	io.WriteString(w, "]")
}

// Dict represents a dictionary object in a PDF file.
type Dict map[Name]Object

func (x Dict) String() string {
	res := []string{}
	tp, ok := x["Type"].(Name)
	if ok {
		res = append(res, string(tp)+" Dict")
	} else {
		res = append(res, "Dict")
	}
	res = append(res, strconv.Itoa(len(x))+" entries")
	return "<" + strings.Join(res, ", ") + ">"
}

func (x Dict) format(w io.Writer) {
	if x == nil {
		io.WriteString(w, "null")
		return
	}

	var keys []Name
	for key := range x {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	io.WriteString(w, "<<")
	for _, name := range keys {
		val := x[name]
		if val == nil {
			continue
		}
		io.WriteString(w, " ")
		name.format(w)
		io.WriteString(w, " ")
		val.format(w)
	}
	io.WriteString(w, " >>")
}

// Stream represents a stream object in a PDF file.  The stream dictionary
// is embedded, and R reads the (decoded) stream data.
type Stream struct {
	Dict
	R io.Reader
}

func (x *Stream) String() string {
	res := []string{}
	tp, ok := x.Dict["Type"].(Name)
	if ok {
		res = append(res, string(tp)+" Stream")
	} else {
		res = append(res, "Stream")
	}
	length, ok := x.Dict["Length"].(Integer)
	if ok {
		res = append(res, strconv.FormatInt(int64(length), 10)+" bytes")
	}
	return "<" + strings.Join(res, ", ") + ">"
}

func (x *Stream) format(w io.Writer) {
	x.Dict.format(w)
	io.WriteString(w, " stream")
}

// Reference represents a reference to an indirect object in a PDF file.
// The lower 32 bits contain the object number, the next 16 bits the
// generation number.
type Reference uint64

// NewReference creates a new reference object.
func NewReference(number uint32, generation uint16) Reference {
	return Reference(number) | Reference(generation)<<32
}

// Number returns the object number of the reference.
func (x Reference) Number() uint32 {
	return uint32(x)
}

// Generation returns the generation number of the reference.
func (x Reference) Generation() uint16 {
	return uint16(x >> 32)
}

func (x Reference) String() string {
	res := strconv.FormatUint(uint64(x.Number()), 10)
	gen := x.Generation()
	if gen > 0 {
		res += "@" + strconv.FormatUint(uint64(gen), 10)
	}
	return "obj_" + res
}

func (x Reference) format(w io.Writer) {
	fmt.Fprintf(w, "%d %d R", x.Number(), x.Generation())
}

// Format returns a textual representation of a PDF object, for use in
// error messages.
func Format(obj Object) string {
	if obj == nil {
		return "null"
	}
	buf := &bytes.Buffer{}
	obj.format(buf)
	return buf.String()
}
