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

package configuration

import (
	"github.com/optakt/rosetta-conformance/rosetta/failure"
	"github.com/optakt/rosetta-conformance/rosetta/identifier"
	"github.com/optakt/rosetta-conformance/rosetta/meta"
)

// Versions reported by the configuration.
const (
	RosettaVersion    = "1.4.12"
	MiddlewareVersion = "0.1.0"
)

// Default status definitions, used when a network does not declare its own.
var (
	StatusSuccess = meta.StatusDefinition{Status: "SUCCESS", Successful: true}
	StatusFailure = meta.StatusDefinition{Status: "FAILURE", Successful: false}
)

// Configuration describes what a network reports through its Rosetta API:
// its identifier, versions, the operation types and statuses it can produce
// and the errors it can return. It doubles as the status table used to decide
// whether an operation was applied on-chain.
type Configuration struct {
	network    identifier.Network
	version    meta.Version
	statuses   []meta.StatusDefinition
	successful map[string]bool
	operations []string
	errors     []meta.ErrorDefinition
}

// New creates a configuration for the given network. Without explicit status
// definitions, the default success and failure statuses are used.
func New(network identifier.Network, nodeVersion string, operations []string, statuses ...meta.StatusDefinition) *Configuration {

	version := meta.Version{
		RosettaVersion:    RosettaVersion,
		NodeVersion:       nodeVersion,
		MiddlewareVersion: MiddlewareVersion,
	}

	if len(statuses) == 0 {
		statuses = []meta.StatusDefinition{
			StatusSuccess,
			StatusFailure,
		}
	}

	successful := make(map[string]bool, len(statuses))
	for _, status := range statuses {
		successful[status.Status] = status.Successful
	}

	errors := []meta.ErrorDefinition{
		failure.ErrorInternal,
		failure.ErrorInvalidFormat,
		failure.ErrorInvalidNetwork,
		failure.ErrorInvalidIntent,
		failure.ErrorInvalidAmount,
		failure.ErrorInvalidDescriptions,
		failure.ErrorUnknownStatus,
		failure.ErrorOperationsMismatch,
		failure.ErrorSignersMismatch,
		failure.ErrorUnsupportedOperation,
	}

	c := Configuration{
		network:    network,
		version:    version,
		statuses:   statuses,
		successful: successful,
		operations: operations,
		errors:     errors,
	}

	return &c
}

func (c *Configuration) Network() identifier.Network {
	return c.network
}

func (c *Configuration) Version() meta.Version {
	return c.version
}

func (c *Configuration) Statuses() []meta.StatusDefinition {
	return c.statuses
}

func (c *Configuration) Operations() []string {
	return c.operations
}

func (c *Configuration) Errors() []meta.ErrorDefinition {
	return c.errors
}

// Supports returns whether the given operation type is part of the configured
// operation types. A configuration without operation types supports all of them.
func (c *Configuration) Supports(operation string) bool {
	if len(c.operations) == 0 {
		return true
	}
	for _, op := range c.operations {
		if op == operation {
			return true
		}
	}
	return false
}

// Successful returns whether operations with the given status were applied.
// Missing and unknown statuses are an error rather than an unsuccessful
// status, as they indicate a misbehaving implementation.
func (c *Configuration) Successful(status string) (bool, error) {
	if status == "" {
		return false, failure.UnknownStatus{
			Description: failure.NewDescription("operation status is missing"),
		}
	}

	successful, ok := c.successful[status]
	if !ok {
		return false, failure.UnknownStatus{
			Description: failure.NewDescription("operation status is not configured",
				failure.WithString("blockchain", c.network.Blockchain),
				failure.WithString("network", c.network.Network),
			),
			Status: status,
		}
	}

	return successful, nil
}

// Check verifies that the given network identifier is the configured one.
func (c *Configuration) Check(network identifier.Network) error {
	if network.Blockchain != c.network.Blockchain {
		return failure.InvalidNetwork{
			Description: failure.NewDescription("invalid network identifier blockchain",
				failure.WithString("blockchain", network.Blockchain),
				failure.WithString("network", network.Network),
				failure.WithString("blockchain_want", c.network.Blockchain),
			),
		}
	}

	if network.Network != c.network.Network {
		return failure.InvalidNetwork{
			Description: failure.NewDescription("invalid network identifier network",
				failure.WithString("blockchain", network.Blockchain),
				failure.WithString("network", network.Network),
				failure.WithString("network_want", c.network.Network),
			),
		}
	}

	return nil
}
