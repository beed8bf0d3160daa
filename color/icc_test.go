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

package color

import (
	"testing"

	"seehuhn.de/go/pdfrender/internal/memdoc"
	"seehuhn.de/go/pdfrender/pdf"
)

// iccStream builds a profile stream object with the given dictionary
// entries.  The profile data itself is never read by the resolver.
func iccStream(dict pdf.Dict) *pdf.Stream {
	return &pdf.Stream{Dict: dict}
}

func TestICCBasedComponentCount(t *testing.T) {
	doc := memdoc.New()

	cases := []struct {
		n        pdf.Integer
		expected Space
	}{
		{1, SpaceDeviceGray},
		{3, SpaceDeviceRGB},
		{4, SpaceDeviceCMYK},
	}
	for _, test := range cases {
		s, err := readICCBased(doc, []pdf.Object{
			iccStream(pdf.Dict{"N": test.n}),
		})
		if err != nil {
			t.Fatal(err)
		}
		if s.Base() != test.expected {
			t.Errorf("N=%d: resolved to %v", test.n, s.Base())
		}
		if s.Channels() != int(test.n) {
			t.Errorf("N=%d: got %d channels", test.n, s.Channels())
		}
		if s.Family() != FamilyICCBased {
			t.Errorf("N=%d: got family %v", test.n, s.Family())
		}
	}

	// other component counts are not supported
	for _, n := range []pdf.Integer{0, 2, 5, -1} {
		_, err := readICCBased(doc, []pdf.Object{
			iccStream(pdf.Dict{"N": n}),
		})
		if !pdf.IsUnsupported(err) {
			t.Errorf("N=%d: expected UnsupportedError, got %v", n, err)
		}
	}
}

// TestICCBasedMatchesDeviceRGB verifies that an ICC-based space with three
// components and no alternate converts exactly like DeviceRGB.
func TestICCBasedMatchesDeviceRGB(t *testing.T) {
	doc := memdoc.New()
	s, err := readICCBased(doc, []pdf.Object{
		iccStream(pdf.Dict{"N": pdf.Integer(3)}),
	})
	if err != nil {
		t.Fatal(err)
	}

	steps := []float64{0, 0.2, 0.5, 0.8, 1}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				in := []float64{r, g, b}
				if s.Color(in) != SpaceDeviceRGB.Color(in) {
					t.Fatalf("mismatch for %v", in)
				}
			}
		}
	}
}

func TestICCBasedAlternateName(t *testing.T) {
	doc := memdoc.New()
	s, err := readICCBased(doc, []pdf.Object{
		iccStream(pdf.Dict{
			"N":         pdf.Integer(4),
			"Alternate": pdf.Name("DeviceCMYK"),
		}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.Base() != SpaceDeviceCMYK {
		t.Errorf("resolved to %v", s.Base())
	}

	in := []float64{0.1, 0.2, 0.3, 0.4}
	if s.Color(in) != SpaceDeviceCMYK.Color(in) {
		t.Error("conversion does not match DeviceCMYK")
	}
}

func TestICCBasedAlternateArray(t *testing.T) {
	doc := memdoc.New()
	_, err := readICCBased(doc, []pdf.Object{
		iccStream(pdf.Dict{
			"N":         pdf.Integer(3),
			"Alternate": pdf.Array{pdf.Name("CalRGB"), pdf.Dict{}},
		}),
	})
	if !pdf.IsUnsupported(err) {
		t.Errorf("expected UnsupportedError, got %v", err)
	}
}

func TestICCBasedErrors(t *testing.T) {
	doc := memdoc.New()

	// no parameters
	_, err := readICCBased(doc, nil)
	if !pdf.IsMalformed(err) {
		t.Errorf("expected MalformedFileError, got %v", err)
	}

	// parameter is not a stream
	_, err = readICCBased(doc, []pdf.Object{pdf.Dict{"N": pdf.Integer(3)}})
	if !pdf.IsMalformed(err) {
		t.Errorf("expected MalformedFileError, got %v", err)
	}

	// an alternate which is neither a name nor an array
	_, err = readICCBased(doc, []pdf.Object{
		iccStream(pdf.Dict{"Alternate": pdf.Integer(3)}),
	})
	if !pdf.IsMalformed(err) {
		t.Errorf("expected MalformedFileError, got %v", err)
	}
}

func TestICCBasedIndirect(t *testing.T) {
	doc := memdoc.New()
	ref := doc.Put(iccStream(pdf.Dict{"N": pdf.Integer(1)}))

	s, err := readICCBased(doc, []pdf.Object{ref})
	if err != nil {
		t.Fatal(err)
	}
	if s.Base() != SpaceDeviceGray {
		t.Errorf("resolved to %v", s.Base())
	}
	if got := s.Color([]float64{1}); got != (RGB{255, 255, 255}) {
		t.Errorf("got %v", got)
	}
}
