package client

import (
	"context"
	"sync"

	"github.com/fivetwenty-io/tally-client/internal/constants"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// versionChecker warns once when the server reports an API version outside
// tally.APIVersionRange.
type versionChecker struct {
	once   sync.Once
	logger tally.Logger
}

func newVersionChecker(logger tally.Logger) *versionChecker {
	return &versionChecker{logger: logger}
}

// Observe is a tally.ResponseInterceptor.
func (v *versionChecker) Observe(_ context.Context, _ *tally.Request, resp *tally.Response) error {
	if resp == nil || resp.Error != nil || resp.Headers == nil {
		return nil
	}

	serverVersion := resp.Headers.Get(constants.HeaderAPIVersion)
	if serverVersion == "" {
		return nil
	}

	v.once.Do(func() {
		result := tally.CheckCompatibility(serverVersion)
		if result.Status != tally.Incompatible {
			return
		}

		v.logger.Warn("Tally API version is outside the supported range", map[string]interface{}{
			"server_version":  result.ServerVersion,
			"sdk_version":     result.SDKVersion,
			"supported_range": result.SupportedRange,
		})
	})

	return nil
}
