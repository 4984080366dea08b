// SPDX-License-Identifier: MIT

package matrix

// Test bridge: read-only view of the resolved numeric policy.

// ValidateNaNInfSnapshot_TestOnly resolves opts over the defaults and reports
// the effective NaN/Inf policy.
func ValidateNaNInfSnapshot_TestOnly(opts ...Option) bool {
	return gatherOptions(opts...).validateNaNInf
}

// ValidatesNaNInf_TestOnly reports the policy carried by a Dense instance.
func ValidatesNaNInf_TestOnly(m *Dense) bool { return m.validateNaNInf }

// CValidatesNaNInf_TestOnly reports the policy carried by a CDense instance.
func CValidatesNaNInf_TestOnly(m *CDense) bool { return m.validateNaNInf }
