// This file is part of Painting64.
//
// Painting64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Painting64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Painting64.  If not, see <https://www.gnu.org/licenses/>.

// Package test bundles helper functions that remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect*() functions report a failure and allow the test to continue. The
// Demand*() functions are fatal and should be used when the value being tested
// is needed for further tests. For example, testing that the length of a slice
// is correct before indexing it.
//
// It is worth describing how the success/failure functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// Because of how errors usually work (nil to indicate no error) we *need* to
// interpret nil in this way.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The Compare() function can then be used to test for
// equality with an expected string.
package test
