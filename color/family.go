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
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/pdfrender/pdf"
)

// Family identifies a PDF color space family.
type Family struct {
	// Name is the family name as it appears in PDF files.
	Name pdf.Name

	// NeedsParameters indicates that color spaces of this family can
	// only be declared in array form, with parameters following the
	// family name.
	NeedsParameters bool
}

// The color space families defined by PDF.
var (
	FamilyDeviceGray = Family{"DeviceGray", false}
	FamilyDeviceRGB  = Family{"DeviceRGB", false}
	FamilyDeviceCMYK = Family{"DeviceCMYK", false}
	FamilyCalGray    = Family{"CalGray", true}
	FamilyCalRGB     = Family{"CalRGB", true}
	FamilyLab        = Family{"Lab", true}
	FamilyICCBased   = Family{"ICCBased", true}
	FamilyIndexed    = Family{"Indexed", true}
	FamilyPattern    = Family{"Pattern", false}
	FamilySeparation = Family{"Separation", true}
	FamilyDeviceN    = Family{"DeviceN", true}
)

var families = map[pdf.Name]Family{
	FamilyDeviceGray.Name: FamilyDeviceGray,
	FamilyDeviceRGB.Name:  FamilyDeviceRGB,
	FamilyDeviceCMYK.Name: FamilyDeviceCMYK,
	FamilyCalGray.Name:    FamilyCalGray,
	FamilyCalRGB.Name:     FamilyCalRGB,
	FamilyLab.Name:        FamilyLab,
	FamilyICCBased.Name:   FamilyICCBased,
	FamilyIndexed.Name:    FamilyIndexed,
	FamilyPattern.Name:    FamilyPattern,
	FamilySeparation.Name: FamilySeparation,
	FamilyDeviceN.Name:    FamilyDeviceN,
}

// LookupFamily returns the color space family with the given name.
// Family names are case-sensitive PDF name tokens and are matched exactly
// as written.  Unknown names result in an error of type
// [pdf.MalformedFileError].
func LookupFamily(name pdf.Name) (Family, error) {
	f, ok := families[name]
	if !ok {
		return Family{}, &pdf.MalformedFileError{
			Err: fmt.Errorf("unknown color space family %q", string(name)),
		}
	}
	return f, nil
}

// Families returns all color space families defined by PDF,
// sorted by name.
func Families() []Family {
	names := maps.Keys(families)
	slices.Sort(names)

	res := make([]Family, len(names))
	for i, name := range names {
		res[i] = families[name]
	}
	return res
}
