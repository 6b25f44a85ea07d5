/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package testsuite

import "testing"

// TestRunSuite runs fls's end-to-end test suite. Not a unit test in the
// usual sense -- a simple way to run the fixtures under suite/ and get
// coverage for the real Interpret entry point.
func TestRunSuite(t *testing.T) {
	if err := ExecuteSuite("suite"); err != nil {
		t.Fatalf("test suite failed: %v", err)
	}
}
