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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter captures the usage message of the flag package so that it can be
// amended with the list of sub-modes.
type helpWriter struct {
	strings.Builder
}

// the first line of the usage message printed by the flag package
const usageBanner = "Usage:"

func (hw *helpWriter) help(output io.Writer, path string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	// the flag package prints the banner followed by one or more lines for
	// each flag
	flags := strings.TrimPrefix(hw.String(), usageBanner+"\n")

	if flags == "" && len(subModes) == 0 && additionalHelp == "" {
		if path == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(output, usageBanner)
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", usageBanner, path)
	}

	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
