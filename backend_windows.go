//go:build windows

package nativewin

import (
	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/1broseidon/nativewin/internal/win32"
)

func openNative(p platform.Params) (platform.Implementation, error) {
	w, err := win32.Open(p)
	if err != nil {
		return nil, err
	}
	return w, nil
}
