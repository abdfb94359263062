//go:build linux

package nativewin

import (
	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/1broseidon/nativewin/internal/x11"
)

func openNative(p platform.Params) (platform.Implementation, error) {
	w, err := x11.Open(p)
	if err != nil {
		return nil, err
	}
	return w, nil
}
