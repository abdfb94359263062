//go:build !linux && !windows

package nativewin

import "github.com/1broseidon/nativewin/internal/platform"

func openNative(platform.Params) (platform.Implementation, error) {
	return nil, platform.ErrUnsupported
}
