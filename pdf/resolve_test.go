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
	"testing"
)

// testGetter is a minimal in-memory object store for tests.
type testGetter map[Reference]Object

func (g testGetter) Get(ref Reference) (Object, error) {
	return g[ref], nil
}

func TestResolve(t *testing.T) {
	g := testGetter{
		NewReference(1, 0): Integer(42),
		NewReference(2, 0): NewReference(1, 0),
	}

	// direct objects are returned unchanged
	obj, err := Resolve(g, Name("x"))
	if err != nil {
		t.Fatal(err)
	}
	if obj != Name("x") {
		t.Errorf("got %v", obj)
	}

	// chains of references are followed
	obj, err = Resolve(g, NewReference(2, 0))
	if err != nil {
		t.Fatal(err)
	}
	if obj != Integer(42) {
		t.Errorf("got %v", obj)
	}

	// missing objects resolve to null
	obj, err = Resolve(g, NewReference(99, 0))
	if err != nil {
		t.Fatal(err)
	}
	if obj != nil {
		t.Errorf("got %v", obj)
	}
}

func TestResolveLoop(t *testing.T) {
	g := testGetter{
		NewReference(1, 0): NewReference(2, 0),
		NewReference(2, 0): NewReference(1, 0),
	}
	_, err := Resolve(g, NewReference(1, 0))
	if !IsMalformed(err) {
		t.Errorf("expected MalformedFileError, got %v", err)
	}
}

func TestTypedGetters(t *testing.T) {
	g := testGetter{
		NewReference(1, 0): Array{Integer(1), Integer(2)},
		NewReference(2, 0): Dict{"A": Integer(1)},
	}

	arr, err := GetArray(g, NewReference(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(arr) != 2 {
		t.Errorf("got %v", arr)
	}

	dict, err := GetDict(g, NewReference(2, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(dict) != 1 {
		t.Errorf("got %v", dict)
	}

	// null objects give a zero value without error
	name, err := GetName(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if name != "" {
		t.Errorf("got %q", name)
	}

	// objects of the wrong type give a MalformedFileError
	_, err = GetName(g, Integer(1))
	if !IsMalformed(err) {
		t.Errorf("expected MalformedFileError, got %v", err)
	}
}

func TestGetNumber(t *testing.T) {
	g := testGetter{}
	cases := []struct {
		obj      Object
		expected Number
	}{
		{Integer(3), 3},
		{Real(0.25), 0.25},
		{nil, 0},
	}
	for _, test := range cases {
		x, err := GetNumber(g, test.obj)
		if err != nil {
			t.Fatal(err)
		}
		if x != test.expected {
			t.Errorf("GetNumber(%v): got %v, want %v",
				test.obj, x, test.expected)
		}
	}

	_, err := GetNumber(g, Name("x"))
	if !IsMalformed(err) {
		t.Errorf("expected MalformedFileError, got %v", err)
	}
}

func TestWrap(t *testing.T) {
	base := &MalformedFileError{
		Err: errors.New("broken"),
		Loc: []string{"inner"},
	}
	err := Wrap(base, "outer")

	var e *MalformedFileError
	if !errors.As(err, &e) {
		t.Fatalf("expected MalformedFileError, got %v", err)
	}
	if len(e.Loc) != 2 || e.Loc[0] != "outer" || e.Loc[1] != "inner" {
		t.Errorf("got Loc %v", e.Loc)
	}

	// the original error is left unchanged
	if len(base.Loc) != 1 {
		t.Errorf("original error was modified: %v", base.Loc)
	}

	if Wrap(nil, "x") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

func TestIsUnsupported(t *testing.T) {
	err := error(&UnsupportedError{Feature: "test feature"})
	if !IsUnsupported(err) {
		t.Error("IsUnsupported failed")
	}
	if IsUnsupported(errors.New("other")) {
		t.Error("IsUnsupported misfired")
	}
	if IsMalformed(err) {
		t.Error("IsMalformed misfired")
	}
}
