// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or use this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "bytes"

// testBuffer satisfies gc.Buffer on top of bytes.Buffer.
type testBuffer struct{ bytes.Buffer }
