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

// Package memdoc provides an in-memory PDF document object graph.
// This is used in unit tests, in place of a parsed PDF file.
package memdoc

import (
	"seehuhn.de/go/pdfrender/pdf"
)

// Doc is an in-memory collection of indirect objects.
//
// This type implements the [pdf.Getter] interface.
type Doc struct {
	objects map[pdf.Reference]pdf.Object
	next    uint32
}

// New creates a new, empty document.
func New() *Doc {
	return &Doc{
		objects: make(map[pdf.Reference]pdf.Object),
		next:    1,
	}
}

// Put stores obj as a new indirect object and returns a reference to it.
func (d *Doc) Put(obj pdf.Object) pdf.Reference {
	ref := pdf.NewReference(d.next, 0)
	d.next++
	d.objects[ref] = obj
	return ref
}

// Set stores obj under the given reference, overwriting any previous value.
func (d *Doc) Set(ref pdf.Reference, obj pdf.Object) {
	d.objects[ref] = obj
}

// Get returns the object stored under the given reference.  Missing objects
// resolve to nil, mirroring the treatment of free objects in a real PDF
// file.  This implements the [pdf.Getter] interface.
func (d *Doc) Get(ref pdf.Reference) (pdf.Object, error) {
	return d.objects[ref], nil
}
