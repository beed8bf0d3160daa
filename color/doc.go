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

// Package color resolves PDF color space declarations for rendering.
//
// A color space declaration in a PDF document is either a bare family name,
// e.g. /DeviceRGB, or an array of a family name followed by parameters,
// e.g. [/CalRGB dict].  The function [ReadSpace] turns either form into a
// [Space], which converts tuples of color components into device RGB pixel
// colors:
//
//	cs, err := color.ReadSpace(doc, desc)
//	if err != nil { ... }
//	pixel := cs.Color([]float64{0.2, 0.4, 0.6})
//
// The color spaces which do not require parameters are available as the
// singletons [SpaceDeviceGray], [SpaceDeviceRGB] and [SpaceDeviceCMYK].
// CalRGB color spaces perform a full colorimetric transform through CIE XYZ
// space to sRGB.  ICC-based color spaces are resolved using the component
// count and alternate space declared in the stream dictionary; the profile
// data itself is never decoded.
package color
