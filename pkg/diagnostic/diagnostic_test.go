/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package diagnostic

import (
	"testing"
)

func TestBagCounts(t *testing.T) {
	bag := NewBag()

	if bag.HasErrors() {
		t.Error("a fresh bag should have no errors")
	}

	bag.Report(0, "nul character embedded in middle of file", Warning)
	bag.Report(4, "invalid character in source file", Error)
	bag.Report(9, "no newline at end of // comment", Warning)

	if !bag.HasErrors() {
		t.Error("bag should report errors after an error severity report")
	}
	if bag.ErrorCount() != 1 {
		t.Errorf("wanted 1 error, got %d", bag.ErrorCount())
	}
	if bag.WarningCount() != 2 {
		t.Errorf("wanted 2 warnings, got %d", bag.WarningCount())
	}

	diags := bag.Diagnostics()
	if len(diags) != 3 {
		t.Fatalf("wanted 3 diagnostics, got %d", len(diags))
	}
	if diags[1].Pos != 4 || diags[1].Severity != Error {
		t.Errorf("report order not preserved: %+v", diags[1])
	}
}

func TestSeverityString(t *testing.T) {
	if Warning.String() != "warning" {
		t.Error("wanted warning, got", Warning.String())
	}
	if Error.String() != "error" {
		t.Error("wanted error, got", Error.String())
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic.
	Discard.Report(0, "dropped", Error)
}
