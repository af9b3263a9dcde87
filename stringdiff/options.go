// Copyright 2025 The seqpatch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stringdiff

import (
	"github.com/seqpatch/seqpatch"
	"github.com/seqpatch/seqpatch/internal/config"
)

// Lines makes [FromDiff] and [EditDistance] operate on lines instead of characters. Lines keep
// their trailing newline, so applying a line patch reproduces the target string byte for byte,
// including a missing newline at the end of the input.
func Lines() seqpatch.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Lines = true
		return config.Lines
	}
}
