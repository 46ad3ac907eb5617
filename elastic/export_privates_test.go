// SPDX-License-Identifier: MIT

package elastic

// Test bridge: exposes unexported helpers to elastic_test only.
var (
	ReflectTestOnly     = reflect
	AxisWeightsTestOnly = axisWeights
)
