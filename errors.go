// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cuosd

import "errors"

// ErrUnsupportedFormat is returned by Launch when it is given a format tag
// outside the four enumerated surface formats; the surface is left untouched
// and the error is also logged at slog.LevelError. When no kernel is
// registered for the requested (format, rotateMSAA) dispatch slot, Launch
// logs the same error and sends it on LaunchParams.Done, but returns nil.
// The caller is free to ignore the error, since failure here is advisory.
var ErrUnsupportedFormat = errors.New("cuosd: unsupported surface format")
