// This file is part of sa1hybridizer.
//
// sa1hybridizer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sa1hybridizer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sa1hybridizer.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that callers are expected to test for should be
// exported as constants by the package that creates the error. For example,
// the convert package exports the StructuralAnomaly pattern:
//
//	err := curated.Errorf(convert.StructuralAnomaly, 10, "line was not reproduced")
//
//	if curated.Is(err, convert.StructuralAnomaly) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("batch: %s: %v", "patch.asm", err)
//
//	if curated.Has(f, convert.StructuralAnomaly) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. So wrapping an error with the same prefix that it
// already has does not result in messages like:
//
//	batch: batch: patch.asm: encoding: unknown charset
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': '. For example:
//
//	part 1: part 2: part 3
//
// Curated errors that wrap a non-curated error (any error value in the
// values list) will return that error from Unwrap(), so the errors.Is() and
// errors.As() functions of the standard library continue to work.
package curated
