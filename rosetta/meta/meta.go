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

package meta

// StatusDefinition describes an operation status a network can report, and
// whether operations with that status should be considered as having been
// applied on-chain.
type StatusDefinition struct {
	Status     string `json:"status"`
	Successful bool   `json:"successful"`
}

// ErrorDefinition holds the static part of a Rosetta error: its code, its
// message and whether the failed request can be retried.
type ErrorDefinition struct {
	Code      uint   `json:"code"`
	Message   string `json:"message"`
	Retriable bool   `json:"retriable"`
}

// Version holds the versions of the Rosetta specification, the node and the
// middleware that a configuration describes.
type Version struct {
	RosettaVersion    string `json:"rosetta_version"`
	NodeVersion       string `json:"node_version"`
	MiddlewareVersion string `json:"middleware_version"`
}
