// package appinfo contains the application name and version.
package appinfo

// SPDX-License-Identifier: GPL-3.0-or-later

import "fmt"

// ApplicationName contains the application name.
const ApplicationName = "Devlaunch"

// ApplicationVersion is the version number of the application.
// It is set during the build, see the magefiles.
var ApplicationVersion = "set-during-build"

// ApplicationGitHash has the Git hash of the commit used to create this build.
// It is set during the build, see the magefiles.
var ApplicationGitHash = "set-during-build"

// ReleaseCycle determines whether this is marked as release or as
// development build.
var ReleaseCycle = "set-during-build"

// FormattedApplicationInfo returns the application name & version as single string.
func FormattedApplicationInfo() string {
	return fmt.Sprintf("%s %s", ApplicationName, ExtendedVersion())
}

// ExtendedVersion returns the application version, including the Git hash
// for non-release builds.
func ExtendedVersion() string {
	if ReleaseCycle == "release" {
		return ApplicationVersion
	}
	return fmt.Sprintf("%s-%s", ApplicationVersion, ApplicationGitHash)
}

// UserAgent returns the application name & version suitable for the HTTP
// User-Agent header.
func UserAgent() string {
	return ApplicationName + "/" + ApplicationVersion
}
