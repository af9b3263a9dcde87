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

package seqpatch

import "github.com/seqpatch/seqpatch/internal/config"

// Option configures the behavior of patch operations.
type Option = config.Option

// Clamp makes [Patch.Apply] tolerate malformed patches: spans that run past the end of the base
// version are clamped to its bounds and spans that fail to cover it completely are accepted. By
// default both conditions are errors.
func Clamp() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Clamp = true
		return config.Clamp
	}
}
