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
	"errors"
	"fmt"

	"seehuhn.de/go/pdfrender/pdf"
)

// NewSpace returns the color space for a family name which does not
// require parameters.
//
// Pattern color spaces are recognized but not implemented, and result in an
// error of type [pdf.UnsupportedError].  Family names which require
// parameters, and unknown family names, result in an error of type
// [pdf.MalformedFileError].
func NewSpace(name pdf.Name) (Space, error) {
	switch name {
	case FamilyDeviceGray.Name:
		return SpaceDeviceGray, nil
	case FamilyDeviceRGB.Name:
		return SpaceDeviceRGB, nil
	case FamilyDeviceCMYK.Name:
		return SpaceDeviceCMYK, nil
	case FamilyPattern.Name:
		return nil, &pdf.UnsupportedError{Feature: "Pattern color spaces"}
	}

	family, err := LookupFamily(name)
	if err != nil {
		return nil, err
	}
	if family.NeedsParameters {
		return nil, &pdf.MalformedFileError{
			Err: fmt.Errorf("%s color space cannot be used without parameters",
				string(name)),
		}
	}
	return nil, &pdf.UnsupportedError{Feature: string(name) + " color spaces"}
}

// ReadSpace reads a color space declaration from a PDF document.
//
// The declaration desc is typically a value from the ColorSpace
// sub-dictionary of a page's resource dictionary: either a bare family
// name, or an array of a family name followed by the parameters of the
// color space.  Indirect references are resolved.
//
// Malformed declarations result in an error of type
// [pdf.MalformedFileError]; recognized but unimplemented families result
// in an error of type [pdf.UnsupportedError].
func ReadSpace(r pdf.Getter, desc pdf.Object) (Space, error) {
	desc, err := pdf.Resolve(r, desc)
	if err != nil {
		return nil, err
	}

	switch desc := desc.(type) {
	case pdf.Name:
		return NewSpace(desc)

	case pdf.Array:
		if len(desc) == 0 {
			return nil, &pdf.MalformedFileError{
				Err: errors.New("empty color space array"),
			}
		}
		name, err := pdf.GetName(r, desc[0])
		if err != nil {
			return nil, pdf.Wrap(err, "color space family")
		}
		params := []pdf.Object(desc[1:])

		switch name {
		case FamilyCalRGB.Name:
			return readCalRGB(r, params)
		case FamilyICCBased.Name:
			return readICCBased(r, params)
		}

		if _, err := LookupFamily(name); err != nil {
			return nil, err
		}
		return nil, &pdf.UnsupportedError{
			Feature: string(name) + " color spaces",
		}

	default:
		return nil, &pdf.MalformedFileError{
			Err: fmt.Errorf("invalid color space: %s", pdf.Format(desc)),
		}
	}
}
