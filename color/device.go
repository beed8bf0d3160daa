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

// Singleton objects for the color spaces which do not require any
// parameters.  The values are shared process-wide and never mutated.
var (
	SpaceDeviceGray Space = spaceDeviceGray{}
	SpaceDeviceRGB  Space = spaceDeviceRGB{}
	SpaceDeviceCMYK Space = spaceDeviceCMYK{}
)

// == DeviceGray =============================================================

// spaceDeviceGray represents the DeviceGray color space.
type spaceDeviceGray struct{}

// Family returns the DeviceGray family.
// This implements the [Space] interface.
func (s spaceDeviceGray) Family() Family {
	return FamilyDeviceGray
}

// Channels returns 1.
// This implements the [Space] interface.
func (s spaceDeviceGray) Channels() int {
	return 1
}

// Default returns black.
// This implements the [Space] interface.
func (s spaceDeviceGray) Default() []float64 {
	return []float64{0}
}

// Color converts a gray value in the range from 0 (black) to 1 (white)
// to device RGB.  This implements the [Space] interface.
func (s spaceDeviceGray) Color(values []float64) RGB {
	if len(values) != 1 {
		panic("DeviceGray: need 1 color value")
	}
	g := quant8(values[0])
	return RGB{g, g, g}
}

// == DeviceRGB ==============================================================

// spaceDeviceRGB represents the DeviceRGB color space.
type spaceDeviceRGB struct{}

// Family returns the DeviceRGB family.
// This implements the [Space] interface.
func (s spaceDeviceRGB) Family() Family {
	return FamilyDeviceRGB
}

// Channels returns 3.
// This implements the [Space] interface.
func (s spaceDeviceRGB) Channels() int {
	return 3
}

// Default returns black.
// This implements the [Space] interface.
func (s spaceDeviceRGB) Default() []float64 {
	return []float64{0, 0, 0}
}

// Color converts red, green and blue values in the range from 0 to 1
// to device RGB.  This implements the [Space] interface.
func (s spaceDeviceRGB) Color(values []float64) RGB {
	if len(values) != 3 {
		panic("DeviceRGB: need 3 color values")
	}
	return RGB{
		R: quant8(values[0]),
		G: quant8(values[1]),
		B: quant8(values[2]),
	}
}

// == DeviceCMYK =============================================================

// spaceDeviceCMYK represents the DeviceCMYK color space.
type spaceDeviceCMYK struct{}

// Family returns the DeviceCMYK family.
// This implements the [Space] interface.
func (s spaceDeviceCMYK) Family() Family {
	return FamilyDeviceCMYK
}

// Channels returns 4.
// This implements the [Space] interface.
func (s spaceDeviceCMYK) Channels() int {
	return 4
}

// Default returns black, i.e. full coverage of the black colorant only.
// This implements the [Space] interface.
func (s spaceDeviceCMYK) Default() []float64 {
	return []float64{0, 0, 0, 1}
}

// Color converts cyan, magenta, yellow and black values in the range
// from 0 to 1 to device RGB.  This implements the [Space] interface.
func (s spaceDeviceCMYK) Color(values []float64) RGB {
	if len(values) != 4 {
		panic("DeviceCMYK: need 4 color values")
	}
	return cmykToRGB(values[0], values[1], values[2], values[3])
}

// cmykToRGB implements the standard conversion from CMYK to RGB, with
// each channel given by 255*(1-component)*(1-k), truncated to 8 bits.
func cmykToRGB(c, m, y, k float64) RGB {
	return RGB{
		R: quant8((1 - c) * (1 - k)),
		G: quant8((1 - m) * (1 - k)),
		B: quant8((1 - y) * (1 - k)),
	}
}
