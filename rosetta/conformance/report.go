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

import (
	"github.com/optakt/rosetta-conformance/rosetta/failure"
)

// Names of the checks run for each case.
const (
	CheckMatch   = "match"
	CheckIntent  = "intent"
	CheckSigners = "signers"
)

// Failure is the Rosetta error reported by one check of a case.
type Failure struct {
	Check string
	failure.Error
}

// Report is the outcome of checking one case. Each error is the mismatch
// reported by the corresponding check, or nil if it passed or was skipped.
type Report struct {
	Case        string
	ExpectMatch bool
	Matches     int
	Match       error
	Intent      error
	Signers     error
}

// Conforms returns whether all checks of the case passed.
func (r Report) Conforms() bool {
	return r.Match == nil && r.Intent == nil && r.Signers == nil
}

// Passed returns whether the case behaved as expected.
func (r Report) Passed() bool {
	return r.Conforms() == r.ExpectMatch
}

// Failures converts the mismatches of the report into Rosetta errors, in the
// order the checks are run.
func (r Report) Failures() []Failure {
	checks := []struct {
		name string
		err  error
	}{
		{name: CheckMatch, err: r.Match},
		{name: CheckIntent, err: r.Intent},
		{name: CheckSigners, err: r.Signers},
	}

	var failures []Failure
	for _, check := range checks {
		if check.err == nil {
			continue
		}
		failures = append(failures, Failure{
			Check: check.name,
			Error: failure.Rosetta(check.err),
		})
	}

	return failures
}

// Summary counts the outcomes of a set of reports.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Summarize counts the passed and failed reports.
func Summarize(reports []Report) Summary {
	var s Summary
	for _, report := range reports {
		s.Total++
		if report.Passed() {
			s.Passed++
			continue
		}
		s.Failed++
	}
	return s
}
