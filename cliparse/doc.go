// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cliparse turns command line flags and environment variables into
// the server Config. Flags win over environment variables; everything has a
// usable default, so the server starts with no arguments at all.
package cliparse
