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

package convert

// Sentinal error patterns. Use with curated.Is() and curated.Has().
const (
	// the file could not be decoded or encoded
	EncodingError = "encoding: %v"

	// a literal could not be parsed. recovered by passing the literal through
	// unchanged
	LiteralParseError = "literal: cannot parse %s"

	// the output of a line does not account for every character of the
	// input. the file is abandoned
	StructuralAnomaly = "structural anomaly: line %d: %s"
)
