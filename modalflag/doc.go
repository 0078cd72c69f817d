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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles command lines of the form:
//
//	painting64 [MODE] [flags] [arguments]
//
// where MODE is one of a list of modes. If no mode is given on the command
// line the first mode in the list is used. The flags that are accepted depend
// on the mode, so a program parses the command line in two steps:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("WRITE", "DUMP")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	md.NewMode()
//	yes := md.AddBool("yes", false, "do not ask before writing")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
// A -help flag on the command line prints the flags and modes that are
// accepted at that step and Parse() returns ParseHelp.
package modalflag
