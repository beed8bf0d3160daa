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

	"github.com/chewxy/math32"

	"seehuhn.de/go/pdfrender/pdf"
)

// SpaceCalRGB represents a CalRGB color space.  The calibration state is
// fixed at construction time; conversion is a pure function of the three
// color components.
type SpaceCalRGB struct {
	whitePoint [3]float32
	blackPoint [3]float32
	gamma      [3]float32
	matrix     [9]float32
}

// CalRGB returns a new CalRGB color space.
//
// WhitePoint is the diffuse white point in CIE 1931 XYZ coordinates.  This
// must be a slice of length 3, with non-negative entries, and Y=1.
//
// BlackPoint (optional) is the diffuse black point in CIE 1931 XYZ
// coordinates.  If non-nil, this must be a slice of three non-negative
// numbers.  The default is [0 0 0].
//
// Gamma (optional) gives the gamma values for the red, green and blue
// components.  If non-nil, this must be a slice of three numbers.  The
// default is [1 1 1].
//
// Matrix (optional) is a 3x3 matrix, stored as three column vectors.  The
// default is [1 0 0 0 1 0 0 0 1].
func CalRGB(whitePoint, blackPoint, gamma, matrix []float64) (*SpaceCalRGB, error) {
	if !isPosVec3(whitePoint) || whitePoint[1] != 1 {
		return nil, errors.New("CalRGB: invalid white point")
	}
	if blackPoint == nil {
		blackPoint = []float64{0, 0, 0}
	} else if !isPosVec3(blackPoint) {
		return nil, errors.New("CalRGB: invalid black point")
	}
	if gamma == nil {
		gamma = []float64{1, 1, 1}
	} else if len(gamma) != 3 {
		return nil, errors.New("CalRGB: invalid gamma")
	}
	if matrix == nil {
		matrix = []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
	} else if len(matrix) != 9 {
		return nil, errors.New("CalRGB: invalid matrix")
	}

	res := newCalRGB()
	setVec3(res.whitePoint[:], whitePoint)
	setVec3(res.blackPoint[:], blackPoint)
	setVec3(res.gamma[:], gamma)
	setVec3(res.matrix[:], matrix)
	return res, nil
}

// newCalRGB returns a CalRGB space with all parameters at their defaults.
func newCalRGB() *SpaceCalRGB {
	return &SpaceCalRGB{
		whitePoint: [3]float32{1, 1, 1},
		gamma:      [3]float32{1, 1, 1},
		matrix:     [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
	}
}

func setVec3(dst []float32, src []float64) {
	for i, v := range src {
		dst[i] = float32(v)
	}
}

// readCalRGB constructs a CalRGB color space from the parameters of a
// [/CalRGB dict] color space declaration.
func readCalRGB(r pdf.Getter, params []pdf.Object) (*SpaceCalRGB, error) {
	if len(params) != 1 {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("CalRGB color space expects one parameter"),
		}
	}

	param, err := pdf.Resolve(r, params[0])
	if err != nil {
		return nil, err
	}
	dict, ok := param.(pdf.Dict)
	if !ok {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("CalRGB color space expects a dict parameter"),
		}
	}

	if _, ok := dict["WhitePoint"]; !ok {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("CalRGB color space expects a WhitePoint key"),
		}
	}
	whitePoint, err := floatArray(r, dict["WhitePoint"])
	if err != nil {
		return nil, pdf.Wrap(err, "WhitePoint")
	}
	if len(whitePoint) != 3 {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("CalRGB color space expects 3 WhitePoint parameters"),
		}
	}
	if whitePoint[1] != 1.0 {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("CalRGB color space expects 2nd WhitePoint to be 1.0"),
		}
	}

	res := newCalRGB()
	setVec3(res.whitePoint[:], whitePoint)

	// BlackPoint, Gamma and Matrix are optional.  An entry of the wrong
	// length is ignored and the default kept, matching the lenient
	// behaviour of existing PDF viewers.
	if obj, ok := dict["BlackPoint"]; ok {
		vals, err := floatArray(r, obj)
		if err != nil {
			return nil, pdf.Wrap(err, "BlackPoint")
		}
		if len(vals) == 3 {
			setVec3(res.blackPoint[:], vals)
		}
	}
	if obj, ok := dict["Gamma"]; ok {
		vals, err := floatArray(r, obj)
		if err != nil {
			return nil, pdf.Wrap(err, "Gamma")
		}
		if len(vals) == 3 {
			setVec3(res.gamma[:], vals)
		}
	}
	if obj, ok := dict["Matrix"]; ok {
		vals, err := floatArray(r, obj)
		if err != nil {
			return nil, pdf.Wrap(err, "Matrix")
		}
		if len(vals) == 9 {
			setVec3(res.matrix[:], vals)
		}
	}

	return res, nil
}

// Family returns the CalRGB family.
// This implements the [Space] interface.
func (s *SpaceCalRGB) Family() Family {
	return FamilyCalRGB
}

// Channels returns 3.
// This implements the [Space] interface.
func (s *SpaceCalRGB) Channels() int {
	return 3
}

// Default returns black.
// This implements the [Space] interface.
func (s *SpaceCalRGB) Default() []float64 {
	return []float64{0, 0, 0}
}

// Color converts CalRGB color components to a device RGB pixel color.
//
// The components are clamped to [0, 1] and gamma-decoded, mixed into CIE
// XYZ coordinates by the calibration matrix, normalized against the white
// point, black-point compensated, adapted to the D65 illuminant, and
// finally mapped to sRGB.  All arithmetic uses single-precision floats.
//
// This implements the [Space] interface.
func (s *SpaceCalRGB) Color(values []float64) RGB {
	if len(values) != 3 {
		panic("CalRGB: need 3 color values")
	}
	a := clamp01(float32(values[0]))
	b := clamp01(float32(values[1]))
	c := clamp01(float32(values[2]))

	agr := math32.Pow(a, s.gamma[0])
	bgg := math32.Pow(b, s.gamma[1])
	cgb := math32.Pow(c, s.gamma[2])

	// The matrix holds three column vectors.
	x := s.matrix[0]*agr + s.matrix[3]*bgg + s.matrix[6]*cgb
	y := s.matrix[1]*agr + s.matrix[4]*bgg + s.matrix[7]*cgb
	z := s.matrix[2]*agr + s.matrix[5]*bgg + s.matrix[8]*cgb

	xyz := flattenWhitePoint(s.whitePoint, [3]float32{x, y, z})
	xyz = scaleBlackPoint(s.blackPoint, xyz)
	xyz = adaptToD65(s.whitePoint, xyz)
	srgb := xyzToSRGB(xyz)

	return RGB{
		R: quant8(float64(srgb[0])),
		G: quant8(float64(srgb[1])),
		B: quant8(float64(srgb[2])),
	}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// flattenWhitePoint converts to a flat XYZ space with white point (1, 1, 1).
// Step 2 of https://www.adobe.com/content/dam/acom/en/devnet/photoshop/sdk/AdobeBPC.pdf
// The white point Y component is 1 by construction, so Y passes unchanged.
func flattenWhitePoint(whitePoint, xyz [3]float32) [3]float32 {
	return [3]float32{
		xyz[0] / whitePoint[0],
		xyz[1],
		xyz[2] / whitePoint[2],
	}
}

// decodeL is the inverse of the L* encoding used for black point
// compensation.
func decodeL(input float32) float32 {
	const scale = 0.00110705646 // (((8 + 16) / 116) ^ 3) / 8

	if input < 0 {
		return -decodeL(-input)
	}
	if input <= 8 {
		return input * scale
	}
	return math32.Pow((input+16)/116, 3)
}

// scaleBlackPoint applies black point compensation.  The destination black
// point is [0 0 0].
func scaleBlackPoint(blackPoint, xyz [3]float32) [3]float32 {
	yDst := decodeL(0)
	ySrc := decodeL(blackPoint[0])
	scale := (1 - yDst) / (1 - ySrc)
	offset := 1 - scale

	return [3]float32{
		xyz[0]*scale + offset,
		xyz[1]*scale + offset,
		xyz[2]*scale + offset,
	}
}

// adaptToD65 adapts the color from the declared white point to the D65
// illuminant.
func adaptToD65(whitePoint, xyz [3]float32) [3]float32 {
	const (
		d65x = 0.95047
		d65y = 1.0
		d65z = 1.08883
	)

	return [3]float32{
		xyz[0] * d65x / whitePoint[0],
		xyz[1] * d65y / whitePoint[1],
		xyz[2] * d65z / whitePoint[2],
	}
}

// xyzToSRGBMatrix is the sRGB D65 [M]^-1 matrix, stored as three row
// vectors.
//
// http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
var xyzToSRGBMatrix = [9]float32{
	3.2404542, -1.5371385, -0.4985314,
	-0.969266, 1.8760108, 0.0415560,
	0.0556434, -0.2040259, 1.0572252,
}

// xyzToSRGB maps CIE XYZ coordinates to linear sRGB components.
func xyzToSRGB(xyz [3]float32) [3]float32 {
	m := xyzToSRGBMatrix
	return [3]float32{
		m[0]*xyz[0] + m[1]*xyz[1] + m[2]*xyz[2],
		m[3]*xyz[0] + m[4]*xyz[1] + m[5]*xyz[2],
		m[6]*xyz[0] + m[7]*xyz[1] + m[8]*xyz[2],
	}
}
