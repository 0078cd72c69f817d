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

// Package paths prepares the paths to Painting64 resources, such as the
// preferences file.
//
// The policy of ResourcePath() is the same on every platform. If the directory
// ".painting64" is present in the current working directory then resources are
// found there. If it is not then the user's config directory, as reported by
// os.UserConfigDir(), is used. On a modern Linux system the preferences file
// is then:
//
//	/home/user/.config/painting64/preferences.ini
package paths
