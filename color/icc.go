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

// SpaceICCBased represents an ICC-based color space.  The profile data is
// not interpreted; only the component count and the optional alternate
// color space declared in the stream dictionary are consulted.  Conversion
// delegates to the resolved base color space.
type SpaceICCBased struct {
	numComponents int
	base          Space
}

// readICCBased constructs an ICC-based color space from the parameters of
// an [/ICCBased stream] color space declaration.
func readICCBased(r pdf.Getter, params []pdf.Object) (*SpaceICCBased, error) {
	if len(params) == 0 {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("ICCBased color space expects one parameter"),
		}
	}

	param, err := pdf.Resolve(r, params[0])
	if err != nil {
		return nil, err
	}
	stream, ok := param.(*pdf.Stream)
	if !ok {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("ICCBased color space expects a stream parameter"),
		}
	}
	dict := stream.Dict

	if alt, ok := dict["Alternate"]; ok {
		alt, err := pdf.Resolve(r, alt)
		if err != nil {
			return nil, err
		}
		switch alt := alt.(type) {
		case pdf.Name:
			base, err := NewSpace(alt)
			if err != nil {
				return nil, pdf.Wrap(err, "ICCBased Alternate")
			}
			return &SpaceICCBased{
				numComponents: base.Channels(),
				base:          base,
			}, nil
		case pdf.Array:
			return nil, &pdf.UnsupportedError{
				Feature: "ICCBased color space with an Alternate array",
			}
		default:
			return nil, &pdf.MalformedFileError{
				Err: fmt.Errorf("invalid ICCBased Alternate: %s",
					pdf.Format(alt)),
			}
		}
	}

	n, err := pdf.GetInt(r, dict["N"])
	if err != nil {
		return nil, pdf.Wrap(err, "ICCBased N")
	}
	var base Space
	switch n {
	case 1:
		base = SpaceDeviceGray
	case 3:
		base = SpaceDeviceRGB
	case 4:
		base = SpaceDeviceCMYK
	default:
		return nil, &pdf.UnsupportedError{
			Feature: fmt.Sprintf("ICCBased color space with %d components", n),
		}
	}
	return &SpaceICCBased{
		numComponents: int(n),
		base:          base,
	}, nil
}

// Family returns the ICCBased family.
// This implements the [Space] interface.
func (s *SpaceICCBased) Family() Family {
	return FamilyICCBased
}

// Channels returns the number of color components declared by the profile
// stream dictionary.  This implements the [Space] interface.
func (s *SpaceICCBased) Channels() int {
	return s.numComponents
}

// Default returns the initial color of the base color space.
// This implements the [Space] interface.
func (s *SpaceICCBased) Default() []float64 {
	return s.base.Default()
}

// Color converts color components to device RGB by delegating to the base
// color space the ICC declaration resolved to.
// This implements the [Space] interface.
func (s *SpaceICCBased) Color(values []float64) RGB {
	return s.base.Color(values)
}

// Base returns the color space the ICC-based declaration resolved to.
func (s *SpaceICCBased) Base() Space {
	return s.base
}
