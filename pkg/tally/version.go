package tally

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
const Version = "0.3.0"

// SDKName is sent in the X-Tally-SDK header.
const SDKName = "tally-go"

// APIVersion is the target Tally API version this SDK was generated from.
const APIVersion = "1.4.0"

// APIVersionRange is the semver constraint of server versions this SDK supports.
const APIVersionRange = ">= 1.4.0, < 2.0.0"

// CompatibilityStatus is the outcome of a version check.
type CompatibilityStatus string

const (
	Compatible   CompatibilityStatus = "compatible"
	Incompatible CompatibilityStatus = "incompatible"
	Unknown      CompatibilityStatus = "unknown"
)

// CompatibilityResult describes how a server version relates to this SDK.
type CompatibilityResult struct {
	Status           CompatibilityStatus `json:"status"             yaml:"status"`
	ServerVersion    string              `json:"server_version"     yaml:"server_version"`
	SDKVersion       string              `json:"sdk_version"        yaml:"sdk_version"`
	TargetAPIVersion string              `json:"target_api_version" yaml:"target_api_version"`
	SupportedRange   string              `json:"supported_range"    yaml:"supported_range"`
	Message          string              `json:"message"            yaml:"message"`
}

// IsCompatible returns true when Status is Compatible.
func (r CompatibilityResult) IsCompatible() bool {
	return r.Status == Compatible
}

// CheckCompatibility checks serverVersion against APIVersionRange.
func CheckCompatibility(serverVersion string) CompatibilityResult {
	result := CompatibilityResult{
		ServerVersion:    serverVersion,
		SDKVersion:       Version,
		TargetAPIVersion: APIVersion,
		SupportedRange:   APIVersionRange,
	}

	if serverVersion == "" {
		result.Status = Unknown
		result.Message = "server did not report a version"

		return result
	}

	version, err := semver.NewVersion(serverVersion)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("server version %q is not a semantic version", serverVersion)

		return result
	}

	constraint, err := semver.NewConstraint(APIVersionRange)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("invalid supported range %q: %v", APIVersionRange, err)

		return result
	}

	if constraint.Check(version) {
		result.Status = Compatible
		result.Message = fmt.Sprintf("server version %s is compatible with SDK %s", serverVersion, Version)
	} else {
		result.Status = Incompatible
		result.Message = fmt.Sprintf("server version %s is outside the supported range %s", serverVersion, APIVersionRange)
	}

	return result
}

// IsCompatible reports whether serverVersion satisfies APIVersionRange.
func IsCompatible(serverVersion string) bool {
	return CheckCompatibility(serverVersion).IsCompatible()
}
