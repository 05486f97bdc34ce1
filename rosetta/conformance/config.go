// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package conformance

// DefaultConfig is the default configuration for the Runner.
var DefaultConfig = Config{
	Workers:        4,
	ErrExtra:       false,
	ConfirmSuccess: false,
}

// Config contains the optional parameters of the Runner.
type Config struct {
	// Workers is the maximum number of cases checked concurrently.
	Workers uint

	// ErrExtra makes observed operations that are not part of the intent a
	// mismatch.
	ErrExtra bool

	// ConfirmSuccess requires observed operations to be successful in order
	// to satisfy the intent.
	ConfirmSuccess bool
}

// Option is an option that can be given to the runner to configure optional
// parameters on initialization.
type Option func(*Config)

// WithWorkers sets the maximum number of cases checked concurrently. Zero is
// ignored.
func WithWorkers(workers uint) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithErrExtra sets whether extra observed operations are a mismatch.
func WithErrExtra(errExtra bool) Option {
	return func(cfg *Config) {
		cfg.ErrExtra = errExtra
	}
}

// WithConfirmSuccess sets whether observed operations must be successful to
// satisfy the intent.
func WithConfirmSuccess(confirm bool) Option {
	return func(cfg *Config) {
		cfg.ConfirmSuccess = confirm
	}
}
