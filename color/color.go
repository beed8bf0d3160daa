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
	"seehuhn.de/go/pdfrender/pdf"
)

// Space represents a resolved PDF color space.
type Space interface {
	// Family returns the color space family.
	Family() Family

	// Channels returns the number of color components of the space.
	Channels() int

	// Default returns the color component values of the initial color
	// of the space.
	Default() []float64

	// Color converts a tuple of color components to a device RGB pixel
	// color.  The number of values must equal Channels(); passing the
	// wrong number of values is a bug in the caller and makes the
	// function panic.
	Color(values []float64) RGB
}

// The following types implement the Space interface:
var (
	_ Space = spaceDeviceGray{}
	_ Space = spaceDeviceRGB{}
	_ Space = spaceDeviceCMYK{}
	_ Space = (*SpaceCalRGB)(nil)
	_ Space = (*SpaceICCBased)(nil)
)

// RGB is a device RGB pixel color with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// RGBA implements the [image/color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// quant8 converts a color component in the range [0, 1] to an 8-bit channel
// value.  The value is truncated rather than rounded.  Out-of-range values
// are clamped, so that extreme calibration inputs can not wrap around.
func quant8(x float64) uint8 {
	t := x * 255
	switch {
	case t >= 255:
		return 255
	case t > 0:
		return uint8(t)
	default:
		// zero, negative, or NaN
		return 0
	}
}

// floatArray resolves obj as an array of numbers.
func floatArray(r pdf.Getter, obj pdf.Object) ([]float64, error) {
	arr, err := pdf.GetArray(r, obj)
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(arr))
	for i, elem := range arr {
		x, err := pdf.GetNumber(r, elem)
		if err != nil {
			return nil, err
		}
		res[i] = float64(x)
	}
	return res, nil
}

func isPosVec3(x []float64) bool {
	if len(x) != 3 {
		return false
	}
	for _, v := range x {
		if v < 0 {
			return false
		}
	}
	return true
}

var (
	// WhitePointD65 represents the D65 whitepoint.
	// The given values are CIE 1931 XYZ coordinates.
	//
	// https://en.wikipedia.org/wiki/Illuminant_D65
	WhitePointD65 = []float64{0.95047, 1.0, 1.08883}

	// WhitePointD50 represents the D50 whitepoint.
	// The given values are CIE 1931 XYZ coordinates.
	//
	// https://en.wikipedia.org/wiki/Standard_illuminant#Illuminant_series_D
	WhitePointD50 = []float64{0.964212, 1.0, 0.8251883}
)
